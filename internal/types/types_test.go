package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"comma separated", "python, sql, docker", []string{"python", "sql", "docker"}},
		{"semicolon separated", "python; sql; docker", []string{"python", "sql", "docker"}},
		{"mixed separators", "python, sql; docker", []string{"python", "sql", "docker"}},
		{"blank entries dropped", "python,, ,sql", []string{"python", "sql"}},
		{"empty string", "", []string{}},
		{"single skill", "python", []string{"python"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSkills(tt.raw))
		})
	}
}

func TestSkillListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected SkillList
	}{
		{"array form", `{"skills": ["python", "sql"]}`, SkillList{"python", "sql"}},
		{"delimited string form", `{"skills": "python, sql; docker"}`, SkillList{"python", "sql", "docker"}},
		{"empty string form", `{"skills": ""}`, SkillList{}},
		{"absent field", `{}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var profile Profile
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &profile))
			assert.Equal(t, tt.expected, profile.Skills)
		})
	}
}

func TestSkillListUnmarshalJSONRejectsOtherTypes(t *testing.T) {
	var profile Profile
	err := json.Unmarshal([]byte(`{"skills": 42}`), &profile)
	assert.Error(t, err)
}
