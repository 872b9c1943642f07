package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExport = `{
	"metadata": {
		"compiled_at": "2025-09-01T12:00:00Z",
		"total_players": 1,
		"unique_players": 1,
		"teams_processed": 1,
		"compiler_version": "1.0.0"
	},
	"players": [
		{
			"name": "Patrick Mahomes",
			"team": "KC",
			"position": "QB",
			"position_group": "Offense",
			"depth": "1st",
			"injury_status": "Active",
			"source": "ESPN",
			"captured_at": "2025-09-01T12:00:00Z"
		}
	]
}`

func TestValidateExportAccepts(t *testing.T) {
	assert.NoError(t, ValidateExport([]byte(validExport)))
}

func TestValidateExportEmptyPlayers(t *testing.T) {
	doc := `{
		"metadata": {
			"compiled_at": "2025-09-01T12:00:00Z",
			"total_players": 0,
			"unique_players": 0,
			"teams_processed": 0,
			"compiler_version": "1.0.0"
		},
		"players": []
	}`
	assert.NoError(t, ValidateExport([]byte(doc)))
}

func TestValidateExportRejectsMissingMetadata(t *testing.T) {
	err := ValidateExport([]byte(`{"players": []}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateExportRejectsBadPositionGroup(t *testing.T) {
	doc := `{
		"metadata": {
			"compiled_at": "2025-09-01T12:00:00Z",
			"total_players": 1,
			"unique_players": 1,
			"teams_processed": 1,
			"compiler_version": "1.0.0"
		},
		"players": [
			{
				"name": "Somebody",
				"team": "KC",
				"position": "QB",
				"position_group": "Attack",
				"depth": "1st",
				"injury_status": "Active",
				"source": "ESPN"
			}
		]
	}`
	err := ValidateExport([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateExportRejectsMalformedJSON(t *testing.T) {
	err := ValidateExport([]byte(`{not json`))
	require.Error(t, err)
}
