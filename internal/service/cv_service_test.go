package service

import (
	"testing"

	"career_compass_backend/internal/model"
	"career_compass_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCVRejectsEmptyProfile(t *testing.T) {
	svc := &CVService{}

	err := svc.CreateCV(&model.CV{})
	assert.ErrorIs(t, err, util.ErrMalformedCV)
}

func TestToProfile(t *testing.T) {
	cv := &model.CV{
		YearsExperience: 4.5,
		EducationLevel:  "bachelor",
		Skills: []model.CVSkill{
			{Name: "Python", Category: "backend", Confidence: 0.9},
			{Name: "Docker", Category: "devops", Confidence: 1},
		},
		WorkExperiences: []model.CVWorkExperience{
			{
				JobTitle:       "Backend Developer",
				CompanyName:    "Acme",
				StartDate:      "2021-03",
				EndDate:        "2024-01",
				DurationMonths: 34,
				Technologies:   "python, postgresql,, redis ",
			},
			{
				JobTitle:     "Senior Backend Developer",
				CompanyName:  "Globex",
				StartDate:    "2024-02",
				IsCurrent:    true,
				Technologies: "",
			},
		},
	}

	profile := ToProfile(cv)

	assert.InDelta(t, 4.5, profile.YearsExperience, 1e-9)
	assert.Equal(t, "bachelor", profile.EducationLevel)

	require.Len(t, profile.Skills, 2)
	assert.Equal(t, "Python", profile.Skills[0].Name)
	assert.InDelta(t, 0.9, profile.Skills[0].Confidence, 1e-9)

	require.Len(t, profile.WorkHistory, 2)
	// 逗号分隔的技术栈按项拆开，空项和首尾空白丢掉
	assert.Equal(t, []string{"python", "postgresql", "redis"}, profile.WorkHistory[0].Technologies)
	assert.Empty(t, profile.WorkHistory[1].Technologies)
	assert.True(t, profile.WorkHistory[1].IsCurrent)
	assert.Equal(t, 34, profile.WorkHistory[0].DurationMonths)
}
