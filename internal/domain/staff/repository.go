package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, s StaffMember) (StaffMember, error)
	GetByID(ctx context.Context, id string) (StaffMember, error)
	ListActive(ctx context.Context) ([]StaffMember, error)
	ListActiveByCategory(ctx context.Context, category RoleCategory) ([]StaffMember, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	Deactivate(ctx context.Context, id string) error
}
