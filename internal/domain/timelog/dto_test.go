package timelog

import (
	"encoding/json"
	"testing"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockInRequest_Validate(t *testing.T) {
	var req ClockInRequest
	require.NoError(t, json.Unmarshal([]byte(`{"clockInTime":"2025-03-04T09:02:00Z","lat":"-6.1753","long":106.8271}`), &req))
	require.NoError(t, req.Validate())
	assert.Equal(t, 9, req.At.Hour())

	missing := ClockInRequest{}
	err := missing.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Equal(t, "lat is required", m["lat"])
	assert.Equal(t, "long is required", m["long"])

	var badTime ClockInRequest
	require.NoError(t, json.Unmarshal([]byte(`{"clockInTime":"yesterday","lat":1,"long":1}`), &badTime))
	require.ErrorAs(t, badTime.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "clockInTime")
}

func TestClockOutRequest_Validate(t *testing.T) {
	req := ClockOutRequest{TimeLogID: "not-a-uuid"}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "timeLogId must be a valid UUID", verrs.ToMap()["timeLogId"])
}
