package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatcher/internal/types"
)

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile(`{
		"skills": ["python", "docker"],
		"education": "bachelor of science",
		"experience": "5 years building services",
		"location": "London"
	}`)
	require.NoError(t, err)
	assert.Equal(t, types.SkillList{"python", "docker"}, profile.Skills)
	assert.Equal(t, "London", profile.Location)
}

func TestParseProfileDelimitedSkills(t *testing.T) {
	profile, err := ParseProfile(`{
		"skills": "python, sql; docker",
		"education": "bachelor of science"
	}`)
	require.NoError(t, err)
	assert.Equal(t, types.SkillList{"python", "sql", "docker"}, profile.Skills)
}

func TestParseProfileInvalidJSON(t *testing.T) {
	_, err := ParseProfile("{not json")
	assert.Error(t, err)
}

func TestParseJobs(t *testing.T) {
	jobs, err := ParseJobs(`[
		{"id": "1", "title": "Backend Engineer", "company": "Acme", "description": "go and postgresql"},
		{"id": "2", "title": "Data Scientist", "company": "Beta", "description": "python"}
	]`)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, "Beta", jobs[1].Company)
}

func TestParseJobsRejectsObject(t *testing.T) {
	_, err := ParseJobs(`{"id": "1"}`)
	assert.Error(t, err)
}

func TestParseJob(t *testing.T) {
	job, err := ParseJob(`{"id": "1", "title": "SRE", "description": "kubernetes"}`)
	require.NoError(t, err)
	assert.Equal(t, "SRE", job.Title)
}
