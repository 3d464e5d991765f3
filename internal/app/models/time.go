package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

func NewTimeModel(now time.Time) TimeModel {
	return TimeModel{CreatedAt: now, UpdatedAt: now}
}

func (t *TimeModel) Touch(now time.Time) {
	t.UpdatedAt = now
}

func (t *TimeModel) SetDeletedAt(now time.Time) {
	t.DeletedAt = &now
}
