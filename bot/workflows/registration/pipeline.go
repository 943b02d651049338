package registration

import (
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
)

// NewPipeline builds the reception step table. districts overrides the
// district choice set when non-empty; now is the clock used by the date
// validator, nil meaning time.Now.
func NewPipeline(districts []entity.Choice, now func() time.Time) *workflow.Pipeline {
	if len(districts) == 0 {
		districts = DefaultDistricts()
	}
	if now == nil {
		now = time.Now
	}

	regions := Regions()
	modes := Modes()

	return workflow.NewPipeline(
		workflow.StepDef{
			Field:     entity.FieldRegion,
			Kind:      workflow.KindChoice,
			PromptKey: i18n.KeyPromptRegion,
			Choices:   regions,
			Validate:  Choice(regions, i18n.KeyErrChoice),
		},
		workflow.StepDef{
			Field:     entity.FieldMode,
			Kind:      workflow.KindChoice,
			PromptKey: i18n.KeyPromptMode,
			Choices:   modes,
			Validate:  Choice(modes, i18n.KeyErrChoice),
		},
		workflow.StepDef{
			Field:     entity.FieldFullName,
			Kind:      workflow.KindText,
			PromptKey: i18n.KeyPromptFullName,
			Validate:  Text(2, 200, i18n.KeyErrFullName),
		},
		workflow.StepDef{
			Field:     entity.FieldDateOfBirth,
			Kind:      workflow.KindDate,
			PromptKey: i18n.KeyPromptDateOfBirth,
			Validate:  Date(now, i18n.KeyErrDateOfBirth),
		},
		workflow.StepDef{
			Field:     entity.FieldDistrict,
			Kind:      workflow.KindChoice,
			PromptKey: i18n.KeyPromptDistrict,
			Choices:   districts,
			Validate:  Choice(districts, i18n.KeyErrChoice),
		},
		workflow.StepDef{
			Field:     entity.FieldPhone,
			Kind:      workflow.KindPhone,
			PromptKey: i18n.KeyPromptPhone,
			Validate:  Phone(i18n.KeyErrPhone),
		},
		workflow.StepDef{
			Field:         entity.FieldAppealText,
			Kind:          workflow.KindText,
			PromptKey:     i18n.KeyPromptAppealText,
			ClearKeyboard: true,
			Validate:      Text(1, 500, i18n.KeyErrAppealText),
		},
	)
}
