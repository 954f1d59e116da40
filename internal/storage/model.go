package storage

// Document is the whole persisted state: three collections kept in insertion
// order. Records hold plain strings so any backend can store them verbatim.
type Document struct {
	Projects []ProjectRecord `json:"projects"`
	Tasks    []TaskRecord    `json:"tasks"`
	Members  []MemberRecord  `json:"members"`
}

// ProjectRecord is the persisted form of a project
type ProjectRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
	MemberIDs   []string `json:"memberIds"`
}

// TaskRecord is the persisted form of a task. Status is the numeric code
// 0=Planned, 1=InProgress, 2=Completed, 3=Archived.
type TaskRecord struct {
	ID               string  `json:"id"`
	ProjectID        string  `json:"projectId"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	DueDate          string  `json:"dueDate"`
	Status           int     `json:"status"`
	AssignedMemberID *string `json:"assignedMemberId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	CompletedAt      *string `json:"completedAt,omitempty"`
}

// MemberRecord is the persisted form of a team member
type MemberRecord struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	JoinedAt string `json:"joinedAt"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() *Document {
	return &Document{
		Projects: []ProjectRecord{},
		Tasks:    []TaskRecord{},
		Members:  []MemberRecord{},
	}
}

// Normalize replaces nil collections with empty ones.
func (d *Document) Normalize() *Document {
	if d.Projects == nil {
		d.Projects = []ProjectRecord{}
	}
	if d.Tasks == nil {
		d.Tasks = []TaskRecord{}
	}
	if d.Members == nil {
		d.Members = []MemberRecord{}
	}
	for i := range d.Projects {
		if d.Projects[i].MemberIDs == nil {
			d.Projects[i].MemberIDs = []string{}
		}
	}
	return d
}

// Clone returns a deep copy so callers never share slices with a store.
func (d *Document) Clone() *Document {
	out := &Document{
		Projects: make([]ProjectRecord, len(d.Projects)),
		Tasks:    make([]TaskRecord, len(d.Tasks)),
		Members:  append([]MemberRecord{}, d.Members...),
	}
	for i, p := range d.Projects {
		p.MemberIDs = append([]string{}, p.MemberIDs...)
		out.Projects[i] = p
	}
	for i, t := range d.Tasks {
		if t.AssignedMemberID != nil {
			v := *t.AssignedMemberID
			t.AssignedMemberID = &v
		}
		if t.CompletedAt != nil {
			v := *t.CompletedAt
			t.CompletedAt = &v
		}
		out.Tasks[i] = t
	}
	return out
}
