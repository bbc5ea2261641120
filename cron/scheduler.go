package cron

import (
	"errors"
	"log"
	"time"

	"glowdesk/config"
	appointmentRepo "glowdesk/database/repository/appointment"
	catalogRepo "glowdesk/database/repository/catalog"
	clientRepo "glowdesk/database/repository/client"
	"glowdesk/models"

	"github.com/hibiken/asynq"
)

// reminderLead is how long before the appointment start the reminder fires.
const reminderLead = 24 * time.Hour

// InitReminderScheduler periodically scans tomorrow's confirmed appointments
// and enqueues one reminder task per appointment.
func InitReminderScheduler(
	appts appointmentRepo.AppointmentRepository,
	clients clientRepo.ClientRepository,
	catalog catalogRepo.CatalogRepository,
) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			enqueueUpcomingReminders(client, appts, clients, catalog)
			<-ticker.C
		}
	}()
}

func enqueueUpcomingReminders(
	client *asynq.Client,
	appts appointmentRepo.AppointmentRepository,
	clients clientRepo.ClientRepository,
	catalog catalogRepo.CatalogRepository,
) {
	now := time.Now()
	upcoming, err := appts.GetByRange(now, now.Add(reminderLead+time.Hour))
	if err != nil {
		log.Printf("[ReminderScheduler] failed to load upcoming appointments: %v", err)
		return
	}

	for _, a := range upcoming {
		if a.Status != models.AppointmentStatusConfirmed {
			continue
		}

		fireAt := a.StartDateTime.Add(-reminderLead)
		if fireAt.Before(now) {
			continue
		}

		c, err := clients.GetByID(a.ClientID)
		if err != nil {
			log.Printf("[ReminderScheduler] skipping appointment %s: %v", a.ID, err)
			continue
		}

		serviceName := "upcoming"
		if a.ServiceID != "" {
			if svc, err := catalog.GetService(a.ServiceID); err == nil && svc != nil {
				serviceName = svc.Name
			}
		} else if a.PromotionID != "" {
			if promo, err := catalog.GetPromotion(a.PromotionID); err == nil && promo != nil {
				serviceName = promo.Name
			}
		}

		payload := models.ReminderPayload{
			AppointmentID: a.ID,
			ClientEmail:   c.Email,
			ClientName:    c.Name,
			StartDateTime: a.StartDateTime.Format(time.RFC1123),
			ServiceName:   serviceName,
		}

		task, opts, err := NewReminderTask(payload, fireAt)
		if err != nil {
			log.Printf("[ReminderScheduler] failed to build task for %s: %v", a.ID, err)
			continue
		}
		// TaskID keyed by appointment makes re-enqueueing on the next tick a no-op.
		opts = append(opts, asynq.TaskID("reminder:"+a.ID))
		if _, err := client.Enqueue(task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Printf("[ReminderScheduler] failed to enqueue reminder for %s: %v", a.ID, err)
		}
	}
}
