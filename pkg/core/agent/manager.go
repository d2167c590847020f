// Package agent maps platform roles (report writer, MIO coach, knowledge
// ingester) to LLM providers, configured from config/models.yaml.
package agent

import (
	"fmt"

	"grouphome_coaching/pkg/core/llm"
)

// Config is the yaml shape of config/models.yaml.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig allows a per-role provider override.
type AgentConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager resolves which provider serves a given agent role.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the provider for an agent role, preferring a per-role
// override, then the global active provider, then gemini.
func (m *Manager) GetProvider(role string) llm.Provider {
	if agentConfig, ok := m.config.Agents[role]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// RegisterProvider installs or replaces a named provider. Tests use this to
// swap in mocks.
func (m *Manager) RegisterProvider(name string, p llm.Provider) {
	m.providers[name] = p
}

// SetGlobalProvider switches the active provider for every role without an
// explicit override.
func (m *Manager) SetGlobalProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.config.ActiveProvider = name
	return nil
}

func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// AvailableProviders lists the registered provider names.
func (m *Manager) AvailableProviders() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}

// ModelFor returns the per-role model override, if configured.
func (m *Manager) ModelFor(role string) string {
	if agentConfig, ok := m.config.Agents[role]; ok {
		return agentConfig.Model
	}
	return ""
}
