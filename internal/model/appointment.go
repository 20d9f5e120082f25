package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

type AppointmentType string

const (
	AppointmentTypeOnline AppointmentType = "Online"
	AppointmentTypeWalkIn AppointmentType = "Walk-in"
)

type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	PatientName string            `json:"patient_name"`
	Phone       string            `json:"phone"`
	Age         int               `json:"age"`
	Doctor      string            `json:"doctor"`
	TimeSlot    string            `json:"time_slot"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Date        time.Time         `json:"date"`
}

type ScheduleAppointmentRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Age         int    `json:"age" binding:"required,gt=0"`
	Doctor      string `json:"doctor" binding:"required"`
	TimeSlot    string `json:"time_slot" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=Scheduled Confirmed Completed Cancelled"`
}
