package patient

import (
	"context"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/patient"
)

type PatientServiceImpl struct {
	patientRepo patient.PatientRepository
}

func NewPatientService(patientRepo patient.PatientRepository) patient.Service {
	return &PatientServiceImpl{patientRepo: patientRepo}
}

func (s *PatientServiceImpl) Create(ctx context.Context, req patient.CreatePatientRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	created, err := s.patientRepo.Create(ctx, patient.Patient{
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Address:      req.Address,
		MedicalNotes: req.MedicalNotes,
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	return mapToPatientResponse(created), nil
}

func (s *PatientServiceImpl) Get(ctx context.Context, id string) (patient.PatientResponse, error) {
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return patient.PatientResponse{}, err
	}
	return mapToPatientResponse(p), nil
}

func (s *PatientServiceImpl) List(ctx context.Context, search string) ([]patient.PatientResponse, error) {
	patients, err := s.patientRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	result := make([]patient.PatientResponse, 0, len(patients))
	for _, p := range patients {
		result = append(result, mapToPatientResponse(p))
	}
	return result, nil
}

func (s *PatientServiceImpl) Update(ctx context.Context, req patient.UpdatePatientRequest) (patient.PatientResponse, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.ID); err != nil {
		return patient.PatientResponse{}, err
	}

	if err := s.patientRepo.Update(ctx, req); err != nil {
		return patient.PatientResponse{}, err
	}

	p, err := s.patientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return patient.PatientResponse{}, err
	}
	return mapToPatientResponse(p), nil
}

func mapToPatientResponse(p patient.Patient) patient.PatientResponse {
	return patient.PatientResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		PhoneNumber:  p.PhoneNumber,
		Email:        p.Email,
		Address:      p.Address,
		MedicalNotes: p.MedicalNotes,
	}
}
