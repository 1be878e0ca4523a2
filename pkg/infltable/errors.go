package infltable

import "errors"

// ErrUnparsed is returned when the table shape cannot be classified as a
// simple (headers along top and/or left) table — spec.md §7 kind 2,
// structural failure. The caller may fall through to a different strategy.
var ErrUnparsed = errors.New("infltable: table shape not recognized")

// errorUnrecognizedForm is the sentinel form text emitted in place of a
// header cell whose text could not be resolved to any tags (spec.md §7
// kind 1, §4.8c). It is not a Go error: parsing continues and the record is
// returned to the caller alongside everything else.
const errorUnrecognizedForm = "error-unrecognized-form"
