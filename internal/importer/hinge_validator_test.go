package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHingeMerged() map[string]interface{} {
	return map[string]interface{}{
		"user": map[string]interface{}{
			"profile": map[string]interface{}{"age": float64(28)},
			"account": map[string]interface{}{"signup_time": "2023-01-01T00:00:00Z"},
		},
		"matches": []interface{}{
			map[string]interface{}{"match": "2023-02-01", "chats": []interface{}{}},
		},
		"prompts": []interface{}{},
	}
}

func TestValidateHinge_Valid(t *testing.T) {
	e, _ := newTestExtractor()
	errs, data := e.validateHinge(validHingeMerged())
	assert.Empty(t, errs)
	assert.Equal(t, "28", data.Age)
	assert.Equal(t, "2023-01-01T00:00:00Z", data.SignupTime)
}

func TestValidateHinge_MissingAgeAndBirthDate(t *testing.T) {
	e, _ := newTestExtractor()
	merged := validHingeMerged()
	merged["user"].(map[string]interface{})["profile"] = map[string]interface{}{}

	errs, _ := e.validateHinge(merged)
	require.Len(t, errs, 1)
	assert.Equal(t, KindBirthDate, errs[0].Kind)
}

func TestValidateHinge_BirthDateAloneSuffices(t *testing.T) {
	e, _ := newTestExtractor()
	merged := validHingeMerged()
	merged["user"].(map[string]interface{})["profile"] = map[string]interface{}{"birth_date": "1995-03-10"}

	errs, _ := e.validateHinge(merged)
	assert.Empty(t, errs)
}

func TestValidateHinge_MissingSignupTime(t *testing.T) {
	e, _ := newTestExtractor()
	merged := validHingeMerged()
	merged["user"].(map[string]interface{})["account"] = map[string]interface{}{}

	errs, _ := e.validateHinge(merged)
	require.Len(t, errs, 1)
	assert.Equal(t, KindCreateDate, errs[0].Kind)
}

func TestValidateHinge_NoMatchesNoPrompts(t *testing.T) {
	e, _ := newTestExtractor()
	merged := validHingeMerged()
	merged["matches"] = []interface{}{}
	merged["prompts"] = []interface{}{}

	errs, _ := e.validateHinge(merged)
	require.Len(t, errs, 1)
	assert.Equal(t, KindNoData, errs[0].Kind)
	assert.Equal(t, 0, errs[0].Diagnostics["match_count"])
	assert.Equal(t, 0, errs[0].Diagnostics["prompt_count"])
}

func TestValidateHinge_PromptsAloneSuffice(t *testing.T) {
	e, _ := newTestExtractor()
	merged := validHingeMerged()
	merged["matches"] = []interface{}{}
	merged["prompts"] = []interface{}{map[string]interface{}{"prompt": "p", "text": "t", "type": "free"}}

	errs, _ := e.validateHinge(merged)
	assert.Empty(t, errs)
}
