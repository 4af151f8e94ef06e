package hints

import (
	"strings"
	"testing"
)

// Not parallel: modifies environment variables and IsInContainer.
func TestForBrowserConnect(t *testing.T) {
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })

	tests := []struct {
		name      string
		env       map[string]string
		container bool
		want      []string
		notWant   []string
	}{
		{
			name:    "local machine",
			env:     map[string]string{"CI": "", "GITHUB_ACTIONS": "", "GITLAB_CI": "", "ROD_BROWSER_BIN": ""},
			want:    []string{"ROD_BROWSER_BIN", "--pdf"},
			notWant: []string{"ROD_NO_SANDBOX"},
		},
		{
			name: "ci without sandbox flag",
			env:  map[string]string{"CI": "true", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": "/usr/bin/chromium"},
			want: []string{"ROD_NO_SANDBOX=1"},
			notWant: []string{"ROD_BROWSER_BIN"},
		},
		{
			name:      "container with sandbox disabled",
			env:       map[string]string{"CI": "", "GITHUB_ACTIONS": "", "GITLAB_CI": "", "ROD_NO_SANDBOX": "1"},
			container: true,
			notWant:   []string{"ROD_NO_SANDBOX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			IsInContainer = func() bool { return tt.container }

			got := ForBrowserConnect()
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("ForBrowserConnect() = %q, missing hint prefix", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ForBrowserConnect() = %q, missing %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("ForBrowserConnect() = %q, unexpected %q", got, w)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"site.yaml", "/home/u/.config/shortstobenz/site.yaml"})
	if !strings.Contains(got, "--config") || !strings.Contains(got, "create /home/u/.config/shortstobenz/site.yaml") {
		t.Errorf("ForConfigNotFound() = %q", got)
	}

	got = ForConfigNotFound([]string{"site.yaml"})
	if strings.Contains(got, "create") {
		t.Errorf("ForConfigNotFound() = %q, unexpected create suggestion", got)
	}
}

func TestSimpleHints(t *testing.T) {
	t.Parallel()

	if got := ForInputDirectory("data"); !strings.Contains(got, "data") || !strings.Contains(got, "--data") {
		t.Errorf("ForInputDirectory() = %q", got)
	}
	if got := ForOutputDirectory(); !strings.Contains(got, "--out") {
		t.Errorf("ForOutputDirectory() = %q", got)
	}
	if got := ForAssetNotFound(nil); got != "" {
		t.Errorf("ForAssetNotFound(nil) = %q, want empty", got)
	}
	if got := ForAssetNotFound([]string{"neon", "print"}); got != "\n  hint: available: neon, print" {
		t.Errorf("ForAssetNotFound() = %q", got)
	}
}
