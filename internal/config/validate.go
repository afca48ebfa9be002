package config

import (
	"fmt"
	"strings"
	"time"
)

var knownMacros = map[string]bool{
	"calories": true,
	"protein":  true,
	"carbs":    true,
	"fat":      true,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Recipe.validate(); err != nil {
		return fmt.Errorf("recipe: %w", err)
	}
	if err := c.Journal.validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if err := c.Nutrition.validate(); err != nil {
		return fmt.Errorf("nutrition: %w", err)
	}
	if c.RateLimit.Enabled && c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.UploadTTL <= 0 || s.UploadTTL > 7*24*time.Hour {
		return fmt.Errorf("upload_ttl must be within (0, 168h] (got %v)", s.UploadTTL)
	}
	if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}
	return nil
}

func (r *RecipeConfig) validate() error {
	if r.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", r.MaxPageSize)
	}
	if r.DefaultPageSize <= 0 || r.DefaultPageSize > r.MaxPageSize {
		return fmt.Errorf("default_page_size must be within [1, %d] (got %d)", r.MaxPageSize, r.DefaultPageSize)
	}
	return nil
}

func (j *JournalConfig) validate() error {
	loc, err := time.LoadLocation(j.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", j.Timezone, err)
	}
	j.Location = loc
	return nil
}

func (n *NutritionConfig) validate() error {
	macros, err := ParseMacroList(n.FavorableIncreaseRaw)
	if err != nil {
		return fmt.Errorf("favorable_increase: %w", err)
	}
	n.FavorableIncrease = macros
	return nil
}

// ParseMacroList parses a comma-separated list of macro names (e.g.
// "protein,carbs"). An empty string returns a nil slice.
func ParseMacroList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	macros := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !knownMacros[p] {
			return nil, fmt.Errorf("unknown macro %q", p)
		}
		macros = append(macros, p)
	}

	return macros, nil
}
