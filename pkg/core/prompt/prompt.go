// Package prompt is a small registry of LLM prompt templates loaded from
// resources/prompts at startup, so coaching copy can change without a deploy.
package prompt

// Template is one reusable prompt with a Go text/template user-prompt body.
type Template struct {
	ID             string `json:"id"`       // e.g. "report.underwriting"
	Name           string `json:"name"`     // human-readable
	Category       string `json:"category"` // report, mio, knowledge
	Description    string `json:"description"`
	SystemPrompt   string `json:"system_prompt"`
	UserPromptTmpl string `json:"user_prompt_template"`
	Version        string `json:"version"`
}
