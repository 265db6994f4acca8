package models

import "encoding/json"

// Rotation is the singleton on-call document, addressed by a fixed
// schedule name. RotationData is an opaque caller-defined object.
type Rotation struct {
	ScheduleName string          `db:"schedule_name" json:"scheduleName"`
	RotationData json.RawMessage `db:"rotation_data" json:"rotationData"`
}
