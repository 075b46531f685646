package safety

// Crisis categories, checked in this order.
const (
	CrisisSuicide         = "suicide"
	CrisisSelfHarm        = "self_harm"
	CrisisImmediateDanger = "immediate_danger"
)

// Assessment is the screening result for one message.
type Assessment struct {
	IsCrisis        bool
	CrisisType      string
	Confidence      float64
	Resources       []Resource
	Recommendations []string
}

// Resource is a crisis hotline or directory.
type Resource struct {
	Name    string
	Phone   string
	Text    string
	Website string
}
