package domain

// Collection names. They double as cache namespaces, signal channels and
// the prefix of query/mutation function paths.
const (
	CollectionAbout         = "about"
	CollectionBlog          = "blog"
	CollectionAvailability  = "availability"
	CollectionContributions = "contributions"
	CollectionLinks         = "links"
	CollectionNow           = "now"
	CollectionProjects      = "projects"
	CollectionResearch      = "research"
	CollectionLikes         = "blogLikes"
)

// Collections lists every mirrored collection.
var Collections = []string{
	CollectionAbout,
	CollectionBlog,
	CollectionAvailability,
	CollectionContributions,
	CollectionLinks,
	CollectionNow,
	CollectionProjects,
	CollectionResearch,
	CollectionLikes,
}

// Fields usable for filtering and grouping.
const (
	FieldType     = "type"
	FieldSection  = "section"
	FieldCategory = "category"
	FieldName     = "name"
	FieldSlug     = "slug"
	FieldTag      = "tag"
)

// LikePreviewLimit caps the liker preview returned with like summaries.
const LikePreviewLimit = 10

type ChangeOp string

const (
	ChangeOpUpsert ChangeOp = "upsert"
	ChangeOpRemove ChangeOp = "remove"
)

type ctxKey string

// SyncClientCtxKey marks a request that presented a valid sync token.
const SyncClientCtxKey ctxKey = "syncClient"
