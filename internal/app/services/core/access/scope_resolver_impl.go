package access

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
)

type scopeResolver struct {
	OrganizationRepository contracts.OrganizationRepository
}

func NewScopeResolver(organizationRepository contracts.OrganizationRepository) contracts.ScopeResolver {
	return &scopeResolver{
		OrganizationRepository: organizationRepository,
	}
}

// ResolveAccessibleOrgs computes the read scope. Evaluation order matters:
// impersonation is a hard override before any user-type widening, and an
// identity without an org resolves to the empty set rather than an error so
// downstream filters stay fail-closed.
func (r *scopeResolver) ResolveAccessibleOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error) {
	return r.resolve(ctx, identity, true)
}

// ResolveWritableOrgs computes the write scope. Tenant admins read across
// their lineage but write only to their own org, so the write scope is always
// a subset of the read scope.
func (r *scopeResolver) ResolveWritableOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error) {
	return r.resolve(ctx, identity, false)
}

func (r *scopeResolver) resolve(ctx context.Context, identity *models.Identity, includeLineageReads bool) (models.OrgIDSet, error) {
	if identity.IsImpersonating && identity.OrgID != "" {
		org, err := r.OrganizationRepository.FindByID(ctx, identity.OrgID)
		if err != nil {
			return nil, err
		}
		if org == nil || !org.IsActive {
			return models.NewOrgIDSet(), nil
		}
		return models.NewOrgIDSet(identity.OrgID), nil
	}

	if identity.UserType == constvars.UserTypeSystemAdmin {
		activeOrgs, err := r.OrganizationRepository.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}
		scope := models.NewOrgIDSet()
		for _, org := range activeOrgs {
			scope.Add(org.ID)
		}
		return scope, nil
	}

	if identity.OrgID == "" {
		return models.NewOrgIDSet(), nil
	}

	ownOrg, err := r.OrganizationRepository.FindByID(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}
	if ownOrg == nil || !ownOrg.IsActive {
		return models.NewOrgIDSet(), nil
	}

	scope := models.NewOrgIDSet(ownOrg.ID)

	switch identity.UserType {
	case constvars.UserTypeSuperAdmin:
		children, err := r.OrganizationRepository.FindActiveChildren(ctx, ownOrg.ID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			scope.Add(child.ID)
		}
	case constvars.UserTypeTenantAdmin:
		if !includeLineageReads || ownOrg.ParentOrgID == nil {
			break
		}
		parent, err := r.OrganizationRepository.FindByID(ctx, *ownOrg.ParentOrgID)
		if err != nil {
			return nil, err
		}
		// A dangling or inactive parent degrades to self-only scope.
		if parent == nil || !parent.IsActive {
			break
		}
		scope.Add(parent.ID)
		siblings, err := r.OrganizationRepository.FindActiveChildren(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		for _, sibling := range siblings {
			if sibling.ID != ownOrg.ID {
				scope.Add(sibling.ID)
			}
		}
	}

	return scope, nil
}
