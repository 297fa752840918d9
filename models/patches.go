package models

// Patch types for partial updates. A nil field means "not supplied";
// only present fields are written. Each Changes method returns the
// column map the update statement is generated from, so updates never
// depend on ambient struct inspection.

type SectionPatch struct {
	Name *string `json:"name,omitempty"`
}

func (p SectionPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	return changes
}

type ProjectPatch struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	Image              *string `json:"image,omitempty"`
	Category           *string `json:"category,omitempty"`
	SectionID          *uint   `json:"section_id,omitempty"`
	AdvantagesTitle    *string `json:"advantages_title,omitempty"`
	AdvantagesSubtitle *string `json:"advantages_subtitle,omitempty"`
}

func (p ProjectPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.SectionID != nil {
		changes["section_id"] = *p.SectionID
	}
	if p.AdvantagesTitle != nil {
		changes["advantages_title"] = *p.AdvantagesTitle
	}
	if p.AdvantagesSubtitle != nil {
		changes["advantages_subtitle"] = *p.AdvantagesSubtitle
	}
	return changes
}

type AdvantagePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Stat        *string `json:"stat,omitempty"`

	// Heading fields are accepted on the advantage wire shape for
	// compatibility but persist onto the owning project row.
	SectionTitle    *string `json:"section_title,omitempty"`
	SectionSubtitle *string `json:"section_subtitle,omitempty"`
}

func (p AdvantagePatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Icon != nil {
		changes["icon"] = *p.Icon
	}
	if p.Stat != nil {
		changes["stat"] = *p.Stat
	}
	return changes
}

// HeadingChanges returns the project-row columns carried on the patch.
func (p AdvantagePatch) HeadingChanges() map[string]any {
	changes := map[string]any{}
	if p.SectionTitle != nil {
		changes["advantages_title"] = *p.SectionTitle
	}
	if p.SectionSubtitle != nil {
		changes["advantages_subtitle"] = *p.SectionSubtitle
	}
	return changes
}

type FeaturePatch struct {
	Title     *string `json:"title,omitempty"`
	Subtitle  *string `json:"subtitle,omitempty"`
	IconKey   *string `json:"icon_key,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
	MediaURL  *string `json:"media_url,omitempty"`
}

func (p FeaturePatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Subtitle != nil {
		changes["subtitle"] = *p.Subtitle
	}
	if p.IconKey != nil {
		changes["icon_key"] = *p.IconKey
	}
	if p.MediaType != nil {
		changes["media_type"] = *p.MediaType
	}
	if p.MediaURL != nil {
		changes["media_url"] = *p.MediaURL
	}
	return changes
}

type StatPatch struct {
	IconKey     *string `json:"icon_key,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Text        *string `json:"text,omitempty"`
}

func (p StatPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.IconKey != nil {
		changes["icon_key"] = *p.IconKey
	}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Text != nil {
		changes["text"] = *p.Text
	}
	return changes
}

type ProjectExtraPatch struct {
	FeatureID   *uint   `json:"feature_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Stat        *string `json:"stat,omitempty"`
}

func (p ProjectExtraPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.FeatureID != nil {
		changes["feature_id"] = *p.FeatureID
	}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Stat != nil {
		changes["stat"] = *p.Stat
	}
	return changes
}

type TeamMemberPatch struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

func (p TeamMemberPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Role != nil {
		changes["role"] = *p.Role
	}
	if p.Bio != nil {
		changes["bio"] = *p.Bio
	}
	if p.Avatar != nil {
		changes["avatar"] = *p.Avatar
	}
	return changes
}

type WorkflowStepPatch struct {
	StepNumber  *int    `json:"step_number,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (p WorkflowStepPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.StepNumber != nil {
		changes["step_number"] = *p.StepNumber
	}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.ImageURL != nil {
		changes["image_url"] = *p.ImageURL
	}
	return changes
}
