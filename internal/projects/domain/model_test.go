package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindValid(t *testing.T) {
	assert.True(t, KindSoftware.Valid())
	assert.True(t, KindHardware.Valid())
	assert.False(t, Kind("firmware").Valid())
	assert.False(t, Kind("").Valid())
}

func TestResourcesJSON(t *testing.T) {
	t.Run("software variant marshals flat", func(t *testing.T) {
		r := Resources{Software: &SoftwareDetails{PRD: "# PRD", TechStack: []string{"React"}}}

		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prd":"# PRD","techStack":["React"],"uiMockups":null,"architectureDiagram":""}`, string(b))
	})

	t.Run("unmarshal picks the variant by shape", func(t *testing.T) {
		var r Resources
		require.NoError(t, json.Unmarshal([]byte(`{"prd":"x","techStack":[],"uiMockups":[],"architectureDiagram":""}`), &r))
		require.NotNil(t, r.Software)
		assert.Nil(t, r.Hardware)
		assert.Equal(t, KindSoftware, r.Kind())

		var h Resources
		require.NoError(t, json.Unmarshal([]byte(`{"blueprint":"y","schematics":[],"buildGuide":"","materialsList":""}`), &h))
		require.NotNil(t, h.Hardware)
		assert.Equal(t, KindHardware, h.Kind())
	})

	t.Run("null clears both variants", func(t *testing.T) {
		r := Resources{Software: &SoftwareDetails{}}
		require.NoError(t, json.Unmarshal([]byte(`null`), &r))
		assert.Nil(t, r.Software)
		assert.Nil(t, r.Hardware)
		assert.Equal(t, Kind(""), r.Kind())
	})

	t.Run("unknown shape is rejected", func(t *testing.T) {
		var r Resources
		err := json.Unmarshal([]byte(`{"something":"else"}`), &r)
		assert.Error(t, err)
	})

	t.Run("round-trips through a project", func(t *testing.T) {
		p := Project{
			ID:       "proj-1",
			OwnerUID: "user-1",
			Kind:     KindHardware,
			Resources: &Resources{Hardware: &HardwareDetails{
				Blueprint:  "# Blueprint",
				Schematics: []string{"https://cdn.example.com/user-1/proj-1/schematics.png"},
			}},
		}

		b, err := json.Marshal(p)
		require.NoError(t, err)

		var got Project
		require.NoError(t, json.Unmarshal(b, &got))
		require.NotNil(t, got.Resources)
		require.NotNil(t, got.Resources.Hardware)
		assert.Equal(t, p.Resources.Hardware.Schematics, got.Resources.Hardware.Schematics)
	})
}
