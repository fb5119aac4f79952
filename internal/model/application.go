package model

// DateLayout is the display convention for every date stamped by the
// application (medical notes, invoice issue dates, last logins). Dates typed
// by the operator are stored as given and never parsed.
const DateLayout = "02/01/2006"

// Application is the aggregate root: every collection the system manages,
// loaded once at startup and saved as a whole after each mutation. It is the
// root object of the persisted JSON document.
type Application struct {
	Patients     []Patient     `json:"patients"`
	Staff        []Staff       `json:"staff"`
	Appointments []Appointment `json:"appointments"`
	Services     []Service     `json:"services"`
	Pharmacy     Pharmacy      `json:"pharmacy"`
	Invoices     []Invoice     `json:"invoices"`
	Users        []UserAccount `json:"users"`
}

// NewApplication returns an empty dataset with all collections allocated.
func NewApplication() *Application {
	return &Application{
		Patients:     []Patient{},
		Staff:        []Staff{},
		Appointments: []Appointment{},
		Services:     []Service{},
		Pharmacy:     Pharmacy{Medications: []Medication{}},
		Invoices:     []Invoice{},
		Users:        []UserAccount{},
	}
}

// NextID allocates the identifier for the record about to be appended to a
// collection. Identifiers are len+1, unique per collection and monotonic only
// because no operation ever removes a record. If deletion is ever introduced
// this must become max existing id + 1.
func NextID[T any](collection []T) int {
	return len(collection) + 1
}

// The Find* lookups resolve a cross-reference by linear scan and return a
// pointer into the collection, or nil when the id matches nothing. A nil
// result is a display-time condition: references are stored unchecked, so a
// dangling id is a valid state, never a write-time rejection.

func (a *Application) FindPatient(id int) *Patient {
	for i := range a.Patients {
		if a.Patients[i].ID == id {
			return &a.Patients[i]
		}
	}
	return nil
}

func (a *Application) FindStaff(id int) *Staff {
	for i := range a.Staff {
		if a.Staff[i].ID == id {
			return &a.Staff[i]
		}
	}
	return nil
}

func (a *Application) FindService(id int) *Service {
	for i := range a.Services {
		if a.Services[i].ID == id {
			return &a.Services[i]
		}
	}
	return nil
}

func (a *Application) FindInvoice(id int) *Invoice {
	for i := range a.Invoices {
		if a.Invoices[i].ID == id {
			return &a.Invoices[i]
		}
	}
	return nil
}

func (a *Application) FindMedication(id int) *Medication {
	for i := range a.Pharmacy.Medications {
		if a.Pharmacy.Medications[i].ID == id {
			return &a.Pharmacy.Medications[i]
		}
	}
	return nil
}

func (a *Application) FindUser(id int) *UserAccount {
	for i := range a.Users {
		if a.Users[i].ID == id {
			return &a.Users[i]
		}
	}
	return nil
}
