package voyagecms

// ChangeOp identifies the kind of mutation carried by a ChangeEvent.
type ChangeOp string

const (
	OpCreate ChangeOp = "create"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// ChangeEvent is published after every successful mutation so that open
// dashboards can drop their cached list for the affected collection and
// refetch. The payload carries no record body: consumers invalidate,
// they never patch.
type ChangeEvent struct {
	Collection string   `json:"collection"`
	Op         ChangeOp `json:"op"`
	ID         int64    `json:"id"`
}

// ChangeChannel is the redis pub/sub channel change events go through.
const ChangeChannel = "voyagecms:changes"

// RecognizedSocialLinks are the social link map keys the dashboard renders
// with icons. Unknown keys round-trip untouched.
var RecognizedSocialLinks = []string{
	"instagram",
	"twitter",
	"tiktok",
	"youtube",
	"facebook",
	"website",
}
