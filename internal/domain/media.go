package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaUpload stores metadata about a form-check video a user attached to a
// workout completion. The actual file resides in S3.
type MediaUpload struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	ProgramID    primitive.ObjectID `bson:"programId" json:"programId"`
	WeekNumber   int                `bson:"weekNumber" json:"weekNumber"`
	WorkoutName  string             `bson:"workoutName" json:"workoutName"`
	S3ObjectKey  string             `bson:"s3ObjectKey" json:"-"` // internal use only
	FileName     string             `bson:"fileName" json:"fileName"`
	ContentType  string             `bson:"contentType" json:"contentType"`
	Size         int64              `bson:"size" json:"size"`
	UploadedAt   time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
