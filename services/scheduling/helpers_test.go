package scheduling

import (
	"errors"
	"time"

	"glowdesk/models"
)

// fakeCatalog is an in-memory CatalogRepository.
type fakeCatalog struct {
	services   map[string]models.Service
	promotions map[string]models.Promotion
	failLookup bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		services:   make(map[string]models.Service),
		promotions: make(map[string]models.Promotion),
	}
}

func (f *fakeCatalog) GetService(id string) (*models.Service, error) {
	if f.failLookup {
		return nil, errors.New("catalog unavailable")
	}
	if s, ok := f.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetPromotion(id string) (*models.Promotion, error) {
	if f.failLookup {
		return nil, errors.New("catalog unavailable")
	}
	if p, ok := f.promotions[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetAllServices() ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalog) GetAllPromotions() ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range f.promotions {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) CreateService(svc *models.Service) error {
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeCatalog) UpdateService(svc *models.Service) error {
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeCatalog) DeleteService(id string) error {
	delete(f.services, id)
	return nil
}

func (f *fakeCatalog) CreatePromotion(promo *models.Promotion) error {
	f.promotions[promo.ID] = *promo
	return nil
}

func (f *fakeCatalog) UpdatePromotion(promo *models.Promotion) error {
	f.promotions[promo.ID] = *promo
	return nil
}

func (f *fakeCatalog) DeletePromotion(id string) error {
	delete(f.promotions, id)
	return nil
}

// fakeAppointments is an in-memory AppointmentRepository.
type fakeAppointments struct {
	appts      []models.Appointment
	failInsert bool
	failList   bool
}

func (f *fakeAppointments) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAppointments) GetAll() ([]models.Appointment, error) {
	if f.failList {
		return nil, errors.New("store unavailable")
	}
	return append([]models.Appointment(nil), f.appts...), nil
}

func (f *fakeAppointments) GetByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) GetByRange(from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.StartDateTime.Before(to) && a.EndDateTime.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) Create(appt *models.Appointment) error {
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeAppointments) CreateMany(appts []models.Appointment) ([]models.Appointment, error) {
	if f.failInsert {
		return nil, errors.New("insert failed")
	}
	f.appts = append(f.appts, appts...)
	return appts, nil
}

func (f *fakeAppointments) Update(appt *models.Appointment) error {
	for i := range f.appts {
		if f.appts[i].ID == appt.ID {
			f.appts[i] = *appt
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeAppointments) UpdateStatus(id, status string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

// fakeClients is an in-memory ClientRepository.
type fakeClients struct {
	clients []models.Client
}

func (f *fakeClients) GetByID(id string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeClients) GetByEmail(email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].Email == email {
			return &f.clients[i], nil
		}
	}
	return nil, nil
}

func (f *fakeClients) GetAll() ([]models.Client, error) {
	return append([]models.Client(nil), f.clients...), nil
}

func (f *fakeClients) Create(client *models.Client) error {
	f.clients = append(f.clients, *client)
	return nil
}

func (f *fakeClients) Update(client *models.Client) error {
	for i := range f.clients {
		if f.clients[i].ID == client.ID {
			f.clients[i] = *client
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeClients) Delete(id string) error {
	for i := range f.clients {
		if f.clients[i].ID == id {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func newTestService(cat *fakeCatalog, appts *fakeAppointments, clients *fakeClients, now time.Time) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Catalog:      cat,
		Appointments: appts,
		Clients:      clients,
		Now:          func() time.Time { return now },
	}
}

func haircutService() models.Service {
	return models.Service{
		ID:              "svc-haircut",
		Name:            "Haircut",
		Category:        "Haircut",
		DurationMinutes: 60,
		Price:           35,
		Active:          true,
	}
}

func manicureService() models.Service {
	return models.Service{
		ID:              "svc-manicure",
		Name:            "Manicure",
		Category:        "Manicure",
		DurationMinutes: 45,
		Price:           25,
		Active:          true,
	}
}
