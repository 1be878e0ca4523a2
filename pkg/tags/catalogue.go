// Package tags holds the canonical grammatical tag catalogue and the
// TagSet type used throughout the inflection-table interpreter.
package tags

// Category groups tags for precedence and stop-rule decisions in the
// column-tag composer (see pkg/infltable's coltags.go).
type Category string

const (
	CategoryPerson      Category = "person"
	CategoryNumber      Category = "number"
	CategoryGender      Category = "gender"
	CategoryCase        Category = "case"
	CategoryMood        Category = "mood"
	CategoryTense       Category = "tense"
	CategoryVoice       Category = "voice"
	CategoryAspect      Category = "aspect"
	CategoryNonFinite   Category = "non-finite"
	CategoryDetail      Category = "detail"
	CategoryPossession  Category = "possession"
	CategoryDescriptive Category = "descriptive" // rare, formal, dated, class labels, ...
)

// Tag is an opaque short identifier drawn from Catalogue. Constructing one
// outside the catalogue is a programmer error caught by MustValid.
type Tag string

// entry pairs a tag with its category and whether it is excluded from
// inheritance into nested header spans (the source's noinherit_tags).
type entry struct {
	category  Category
	noInherit bool
}

// Catalogue is the read-only tag -> category mapping. It must be treated as
// immutable after package init (see spec.md §5: shared, read-only state).
var Catalogue = map[Tag]entry{
	// person
	"first-person":  {category: CategoryPerson},
	"second-person": {category: CategoryPerson},
	"third-person":  {category: CategoryPerson},
	"impersonal":    {category: CategoryPerson},
	"personal":      {category: CategoryDescriptive},
	"pronoun":       {category: CategoryDescriptive},

	// number
	"singular":   {category: CategoryNumber},
	"plural":     {category: CategoryNumber},
	"dual":       {category: CategoryNumber},
	"collective": {category: CategoryNumber},

	// gender
	"masculine": {category: CategoryGender},
	"feminine":  {category: CategoryGender},
	"neuter":    {category: CategoryGender},
	"common":    {category: CategoryGender},

	// case
	"nominative":  {category: CategoryCase},
	"genitive":    {category: CategoryCase},
	"dative":      {category: CategoryCase},
	"accusative":  {category: CategoryCase},
	"instrumental": {category: CategoryCase},
	"prepositional": {category: CategoryCase},
	"locative":    {category: CategoryCase},
	"vocative":    {category: CategoryCase},
	"partitive":   {category: CategoryCase},
	"ablative":    {category: CategoryCase},
	"essive":      {category: CategoryCase},
	"translative": {category: CategoryCase},

	// mood
	"indicative":  {category: CategoryMood},
	"subjunctive": {category: CategoryMood},
	"imperative":  {category: CategoryMood},
	"conditional": {category: CategoryMood},
	"optative":    {category: CategoryMood},
	"dummy-mood":  {category: CategoryMood},

	// tense
	"present": {category: CategoryTense},
	"past":    {category: CategoryTense},
	"future":  {category: CategoryTense},
	"perfect": {category: CategoryTense},
	"pluperfect": {category: CategoryTense},

	// voice
	"active":  {category: CategoryVoice},
	"passive": {category: CategoryVoice},
	"middle":  {category: CategoryVoice},

	// aspect
	"perfective":   {category: CategoryAspect},
	"imperfective": {category: CategoryAspect},
	"habitual":     {category: CategoryAspect},

	// non-finite
	"infinitive":          {category: CategoryNonFinite},
	"infinitive-i":        {category: CategoryNonFinite, noInherit: true},
	"infinitive-i-long":   {category: CategoryNonFinite, noInherit: true},
	"infinitive-ii":       {category: CategoryNonFinite, noInherit: true},
	"infinitive-iii":      {category: CategoryNonFinite, noInherit: true},
	"infinitive-iv":       {category: CategoryNonFinite, noInherit: true},
	"infinitive-v":        {category: CategoryNonFinite, noInherit: true},
	"participle":          {category: CategoryNonFinite},
	"gerund":              {category: CategoryNonFinite},
	"supine":              {category: CategoryNonFinite},
	"converb":             {category: CategoryNonFinite},
	"subordinate-clause":  {category: CategoryDescriptive},

	// possession
	"possessive":        {category: CategoryPossession},
	"possessive-single":  {category: CategoryPossession},
	"possessive-many":    {category: CategoryPossession},

	// detail (free-form cell content that should short-circuit composition)
	"detail": {category: CategoryDetail},

	// article / definiteness (used by the Germanic-noun post-pass)
	"definite":   {category: CategoryDescriptive},
	"indefinite": {category: CategoryDescriptive},
	"noun":       {category: CategoryDescriptive},

	// class / declension / conjugation and other open-ended descriptors
	"class":            {category: CategoryDescriptive},
	"accent-paradigm":  {category: CategoryDescriptive},
	"declension-1":     {category: CategoryDescriptive},
	"declension-2":     {category: CategoryDescriptive},
	"declension-3":     {category: CategoryDescriptive},
	"declension-4":     {category: CategoryDescriptive},
	"declension-5":     {category: CategoryDescriptive},
	"conjugation-1":    {category: CategoryDescriptive},
	"conjugation-2":    {category: CategoryDescriptive},
	"conjugation-3":    {category: CategoryDescriptive},
	"conjugation-4":    {category: CategoryDescriptive},
	"conjugation-5":    {category: CategoryDescriptive},
	"conjugation-6":    {category: CategoryDescriptive},
	"conjugation-7":    {category: CategoryDescriptive},
	"strong":           {category: CategoryDescriptive},
	"weak":             {category: CategoryDescriptive},
	"countable":        {category: CategoryDescriptive},
	"uncountable":      {category: CategoryDescriptive},
	"animate":          {category: CategoryDescriptive},
	"inanimate":        {category: CategoryDescriptive},
	"transitive":       {category: CategoryDescriptive},
	"intransitive":     {category: CategoryDescriptive},
	"ditransitive":     {category: CategoryDescriptive},
	"ambitransitive":   {category: CategoryDescriptive},
	"proper-noun":      {category: CategoryDescriptive},
	"no-plural":        {category: CategoryDescriptive},
	"no-supine":        {category: CategoryDescriptive},
	"no-perfect":       {category: CategoryDescriptive},
	"deponent":         {category: CategoryDescriptive},
	"no-short-form":    {category: CategoryDescriptive},
	"comparative":      {category: CategoryDescriptive},
	"superlative":      {category: CategoryDescriptive},
	"combined-form":    {category: CategoryDescriptive},
	"mutation":         {category: CategoryDescriptive},
	"multiword-construction": {category: CategoryDescriptive},
	"negative":         {category: CategoryDescriptive},
	"positive":         {category: CategoryDescriptive},
	"rare":             {category: CategoryDescriptive},
	"formal":           {category: CategoryDescriptive},
	"informal":         {category: CategoryDescriptive},
	"dated":            {category: CategoryDescriptive},
	"auxiliary":        {category: CategoryDescriptive},
	"word-tags":        {category: CategoryDescriptive},
	"Western-Lombard":  {category: CategoryDescriptive},
	"Eastern-Lombard":  {category: CategoryDescriptive},

	// reset / wildcard markers (never emitted on a FormRecord; both are
	// consumed by the driver)
	"!": {category: CategoryDetail},
	"*": {category: CategoryDetail},
}

// CategoryOf returns the category of t and whether t is a known tag.
func CategoryOf(t Tag) (Category, bool) {
	e, ok := Catalogue[t]
	if !ok {
		return "", false
	}
	return e.category, true
}

// NoInherit reports whether t must never be inherited into an enclosing
// header span's column tags (spec.md §4.1, the "infinitive-*" tags).
func NoInherit(t Tag) bool {
	e, ok := Catalogue[t]
	return ok && e.noInherit
}

// IsReset reports whether t is the distinguished header-span-stack reset
// marker (spec.md §4.5).
func IsReset(t Tag) bool { return t == "!" }

// IsHeaderWildcard reports whether t is the "entire column is headers"
// marker (spec.md §4.5).
func IsHeaderWildcard(t Tag) bool { return t == "*" }

// MustValid panics if t is not in Catalogue. Used at static-data load time
// (programmer error per spec.md §7 kind 3) and never on caller-facing paths.
func MustValid(t Tag) {
	if _, ok := Catalogue[t]; !ok {
		panic("tags: unknown tag in static data: " + string(t))
	}
}
