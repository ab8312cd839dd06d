package importer

import "github.com/spf13/cast"

// HingeValidationData carries the create-date/birth-date substitutes a
// Hinge export offers: the account signup time and the profile age.
type HingeValidationData struct {
	SignupTime string
	Age        string
}

// validateHinge checks a merged Hinge document for the minimum viable
// fields. Hinge exports lack literal birth/create dates, so age plus
// signup_time stand in for them.
func (e *Extractor) validateHinge(merged map[string]interface{}) ([]FieldError, HingeValidationData) {
	var errs []FieldError

	user := mapAt(merged, sectionUser)
	account := mapAt(user, "account")
	profile := mapAt(user, "profile")

	data := HingeValidationData{
		SignupTime: cast.ToString(account["signup_time"]),
	}
	if age, ok := profile["age"]; ok {
		data.Age = cast.ToString(age)
	}

	if !hasAnyKey(profile, "age", "birth_date") {
		errs = append(errs, FieldError{
			Kind:    KindBirthDate,
			Message: "profile has neither age nor birth_date",
		})
	}

	if data.SignupTime == "" {
		errs = append(errs, FieldError{
			Kind:    KindCreateDate,
			Message: "account.signup_time is missing",
		})
	}

	matches := sliceAt(merged, sectionMatches)
	prompts := sliceAt(merged, sectionPrompts)
	if len(matches) == 0 && len(prompts) == 0 {
		errs = append(errs, FieldError{
			Kind:    KindNoData,
			Message: "export has no matches and no prompts",
			Diagnostics: map[string]interface{}{
				"match_count":  len(matches),
				"prompt_count": len(prompts),
			},
		})
	}

	return errs, data
}
