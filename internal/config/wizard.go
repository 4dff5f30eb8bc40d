package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/mahmoudabadi/portfolio/internal/locale"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Owner profile.
	name, err := (&promptui.Prompt{Label: "Your name", Default: cfg.Profile.Name}).Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	email, err := (&promptui.Prompt{
		Label:    "Contact email",
		Default:  cfg.Profile.Email,
		Validate: validateEmail,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	telegram, err := (&promptui.Prompt{Label: "Telegram handle", Default: cfg.Profile.Telegram}).Run()
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	// 2. Default language.
	var items []string
	for _, c := range locale.Codes() {
		items = append(items, fmt.Sprintf("%s  %s", c, c.NativeName()))
	}
	langIdx, _, err := (&promptui.Select{Label: "Default language", Items: items}).Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}

	// 3. Listen port.
	portStr, err := (&promptui.Prompt{
		Label:    "Port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 4. Optional content override directory.
	contentDir, err := (&promptui.Prompt{
		Label:   "Locale bundle directory (leave blank for built-in content)",
		Default: "",
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	cfg.Profile = Profile{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Telegram: strings.TrimSpace(telegram),
	}
	cfg.DefaultLanguage = string(locale.Codes()[langIdx])
	cfg.Port = port
	cfg.ContentDir = strings.TrimSpace(contentDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("not an email address")
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
