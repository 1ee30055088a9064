package models

// AnonymousAuthor is stamped on comments submitted without a name.
const AnonymousAuthor = "Аноним"

// CommentDateLayout renders dates the way the ru-RU locale does (dd.mm.yyyy).
const CommentDateLayout = "02.01.2006"

// Comment is an append-only note attached to exactly one Project.
type Comment struct {
	ID     string `json:"id" yaml:"id"`
	Author string `json:"author" yaml:"author"`
	Text   string `json:"text" yaml:"text"`
	Date   string `json:"date" yaml:"date"`
}

// Project is a community showcase entry pairing a prompt with its output.
type Project struct {
	ID                string           `json:"id" yaml:"id"`
	Title             string           `json:"title" yaml:"title"`
	Author            string           `json:"author" yaml:"author"`
	Description       string           `json:"description" yaml:"description"`
	Model             string           `json:"model" yaml:"model"`
	Config            GenerationConfig `json:"config" yaml:"config"`
	SystemInstruction string           `json:"systemInstruction,omitempty" yaml:"systemInstruction,omitempty"`
	Prompt            string           `json:"prompt" yaml:"prompt"`
	Output            string           `json:"output" yaml:"output"`
	Tags              []string         `json:"tags" yaml:"tags"`
	Comments          []Comment        `json:"comments" yaml:"comments"`
}

// Clone returns a deep copy so callers never share tag or comment slices with a store.
func (p Project) Clone() Project {
	cp := p
	cp.Tags = append([]string{}, p.Tags...)
	cp.Comments = append([]Comment{}, p.Comments...)
	return cp
}

// CloneProjects deep-copies a whole collection.
func CloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// NewProject carries the creation form fields. Tags is the raw comma-separated
// input; Config fields left unset take the showcase defaults.
type NewProject struct {
	Title             string              `json:"title"`
	Author            string              `json:"author"`
	Description       string              `json:"description"`
	Model             string              `json:"model"`
	Config            GenerationOverrides `json:"config"`
	SystemInstruction string              `json:"systemInstruction"`
	Prompt            string              `json:"prompt"`
	Output            string              `json:"output"`
	Tags              string              `json:"tags"`
}

// ProjectForm is the creation form as the showcase displays it, with every
// config value resolved.
type ProjectForm struct {
	Title             string           `json:"title"`
	Author            string           `json:"author"`
	Description       string           `json:"description"`
	Model             string           `json:"model"`
	Config            GenerationConfig `json:"config"`
	SystemInstruction string           `json:"systemInstruction"`
	Prompt            string           `json:"prompt"`
	Output            string           `json:"output"`
	Tags              string           `json:"tags"`
}
