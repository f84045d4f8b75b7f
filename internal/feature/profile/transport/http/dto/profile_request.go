// Package dto defines form payloads for the profile pages.
package dto

import (
	"strconv"
	"strings"

	"careerinn/internal/feature/profile/usecase"
)

// ProfileReq is the /profile form. SelfRating stays a string so a bad value can be reported inline.
type ProfileReq struct {
	SkillsText  string `form:"skills_text"`
	TargetRoles string `form:"target_roles"`
	ResumeLink  string `form:"resume_link"`
	Notes       string `form:"notes"`
	SelfRating  string `form:"self_rating"`
}

// ToInput converts the form. A blank rating is 0; a non-integer returns ErrInvalidRating.
func (r ProfileReq) ToInput() (usecase.ProfileInput, error) {
	in := usecase.ProfileInput{
		SkillsText:  r.SkillsText,
		TargetRoles: r.TargetRoles,
		ResumeLink:  r.ResumeLink,
		Notes:       r.Notes,
	}
	if raw := strings.TrimSpace(r.SelfRating); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, usecase.ErrInvalidRating
		}
		in.SelfRating = n
	}
	return in, nil
}
