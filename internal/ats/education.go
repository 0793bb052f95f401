package ats

import "strings"

// degreeLevel pairs a degree keyword with its rank. An ordered slice
// keeps level resolution deterministic.
type degreeLevel struct {
	keyword string
	level   float64
}

var degreeLevels = []degreeLevel{
	{"phd", 100},
	{"doctorate", 100},
	{"master", 80},
	{"msc", 80},
	{"mba", 80},
	{"bachelor", 60},
	{"bsc", 60},
	{"associate", 40},
	{"diploma", 30},
	{"high school", 20},
}

func highestDegreeLevel(text string) float64 {
	var level float64
	for _, d := range degreeLevels {
		if strings.Contains(text, d.keyword) && d.level > level {
			level = d.level
		}
	}
	return level
}

// educationMatch scores the user's education against what the job text
// asks for. Jobs without a detectable requirement score
// educationNoRequirement; a user meeting or exceeding the requirement
// scores 100, a lower degree scores proportionally and a user with no
// detectable degree scores educationUnknownFallback. Only a missing job
// text gets the neutral fallback; empty user education counts as no
// detectable degree against whatever the job requires.
func educationMatch(userEducation, jobText string) float64 {
	if jobText == "" {
		return educationNeutralFallback
	}

	userLevel := highestDegreeLevel(strings.ToLower(userEducation))
	requiredLevel := highestDegreeLevel(strings.ToLower(jobText))

	switch {
	case requiredLevel == 0:
		return educationNoRequirement
	case userLevel >= requiredLevel:
		return 100
	case userLevel > 0:
		score := userLevel / requiredLevel * 100
		if score > 100 {
			score = 100
		}
		return score
	default:
		return educationUnknownFallback
	}
}
