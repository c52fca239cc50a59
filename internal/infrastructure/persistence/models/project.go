package models

import (
	"time"

	"github.com/backoffice/backend/internal/domain/project"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for the Project entity.
type ProjectModel struct {
	BaseModel
	ProjectCode  string           `gorm:"type:varchar(40);not null;uniqueIndex:idx_projects_code"`
	Name         string           `gorm:"type:varchar(180);not null"`
	Description  string           `gorm:"type:text"`
	StartDate    *time.Time       `gorm:"index"`
	EndDate      *time.Time       `gorm:"index"`
	Status       project.Status   `gorm:"type:varchar(20);not null;default:'planned';index"`
	BudgetAmount *decimal.Decimal `gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProjectCode:  m.ProjectCode,
		Name:         m.Name,
		Description:  m.Description,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       m.Status,
		BudgetAmount: m.BudgetAmount,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ProjectCode = p.ProjectCode
	m.Name = p.Name
	m.Description = p.Description
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.Status = p.Status
	m.BudgetAmount = p.BudgetAmount
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}
