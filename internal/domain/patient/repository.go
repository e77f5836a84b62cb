package patient

import "context"

type PatientRepository interface {
	Create(ctx context.Context, p Patient) (Patient, error)
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context, search string) ([]Patient, error)
	Update(ctx context.Context, req UpdatePatientRequest) error
}

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (PatientResponse, error)
	Get(ctx context.Context, id string) (PatientResponse, error)
	List(ctx context.Context, search string) ([]PatientResponse, error)
	Update(ctx context.Context, req UpdatePatientRequest) (PatientResponse, error)
}
