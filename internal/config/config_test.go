package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		wantErrorContains []string
		want              *Config
	}{
		{
			name:          "defaults only",
			configContent: "",
			want: &Config{
				Server: ServerConfig{
					Port: 8000,
					CORS: CORSConfig{AllowedOrigins: []string{"*"}},
				},
				OpenAI: OpenAIConfig{
					Model:            "gpt-4o-mini",
					MaxRetryAttempts: 2,
				},
				Lessons: LessonsConfig{Directory: "lessons"},
				Database: DatabaseConfig{
					Port:     3306,
					Database: "dotcell",
					Username: "dotcell",
				},
			},
		},
		{
			name: "custom server and lessons values",
			configContent: `server:
  port: 9000
  cors:
    allowed_origins:
      - http://localhost:3000
lessons:
  directory: practice
`,
			want: &Config{
				Server: ServerConfig{
					Port: 9000,
					CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
				},
				OpenAI: OpenAIConfig{
					Model:            "gpt-4o-mini",
					MaxRetryAttempts: 2,
				},
				Lessons: LessonsConfig{Directory: "practice"},
				Database: DatabaseConfig{
					Port:     3306,
					Database: "dotcell",
					Username: "dotcell",
				},
			},
		},
		{
			name:          "api key and model from environment",
			configContent: "",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-test",
				"OPENAI_MODEL":   "gpt-4o",
			},
			want: &Config{
				Server: ServerConfig{
					Port: 8000,
					CORS: CORSConfig{AllowedOrigins: []string{"*"}},
				},
				OpenAI: OpenAIConfig{
					APIKey:           "sk-test",
					Model:            "gpt-4o",
					MaxRetryAttempts: 2,
				},
				Lessons: LessonsConfig{Directory: "lessons"},
				Database: DatabaseConfig{
					Port:     3306,
					Database: "dotcell",
					Username: "dotcell",
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  invalid yaml here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
			},
		},
		{
			name: "frontend directory must exist",
			configContent: `frontend:
  directory: /nonexistent/frontend/dir
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"must be an existing directory",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			configFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0644))

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			got, err := loader.Load()
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_FrontendDirectory(t *testing.T) {
	frontendDir := t.TempDir()
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("frontend:\n  directory: "+frontendDir+"\n"), 0644))

	loader, err := NewConfigLoader(configFile)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, frontendDir, got.Frontend.Directory)
}

func TestDatabaseConfig_Enabled(t *testing.T) {
	assert.False(t, DatabaseConfig{}.Enabled())
	assert.True(t, DatabaseConfig{Host: "localhost"}.Enabled())
}
