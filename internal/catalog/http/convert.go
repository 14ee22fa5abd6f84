package http

import (
	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
)

func adminInfo(a domain.Admin) catalogsdk.AdminInfo {
	return catalogsdk.AdminInfo{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Contact:   a.Contact,
		CreatedAt: a.CreatedAt,
	}
}

func clientInfo(v service.ClientView) catalogsdk.ClientInfo {
	return catalogsdk.ClientInfo{
		ID:               v.ID,
		Name:             v.Name,
		Email:            v.Email,
		RegistrationDate: v.RegisteredAt,
		ExpirationDate:   v.ExpiresAt,
		Status:           string(v.Status),
		DaysRemaining:    v.DaysRemaining,
		CreatedBy:        v.CreatedBy,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func clientInfos(vs []service.ClientView) []catalogsdk.ClientInfo {
	out := make([]catalogsdk.ClientInfo, len(vs))
	for i, v := range vs {
		out[i] = clientInfo(v)
	}
	return out
}

func requestInfo(r domain.RenewalRequest) catalogsdk.RequestInfo {
	out := catalogsdk.RequestInfo{
		ID:        r.ID,
		ClientID:  r.ClientID,
		Type:      string(r.Type),
		State:     string(r.State),
		CreatedAt: r.CreatedAt,
		DecidedBy: r.DecidedBy,
	}
	if !r.DecidedAt.IsZero() {
		at := r.DecidedAt
		out.DecidedAt = &at
	}
	return out
}

func requestInfos(rs []domain.RenewalRequest) []catalogsdk.RequestInfo {
	out := make([]catalogsdk.RequestInfo, len(rs))
	for i, r := range rs {
		out[i] = requestInfo(r)
	}
	return out
}

func pendingInfo(p domain.PendingRequestView) catalogsdk.PendingRequestInfo {
	return catalogsdk.PendingRequestInfo{
		RequestInfo:       requestInfo(p.RenewalRequest),
		ClientName:        p.ClientName,
		ClientEmail:       p.ClientEmail,
		CurrentExpiration: p.CurrentExpiration,
	}
}

func demoInfo(d domain.Demo) catalogsdk.DemoInfo {
	return catalogsdk.DemoInfo{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Vertical:      d.Vertical,
		Horizontal:    d.Horizontal,
		Keywords:      d.Keywords,
		ProjectCode:   d.ProjectCode,
		URL:           d.URL,
		State:         string(d.State),
		SalesName:     d.SalesName,
		SalesContact:  d.SalesContact,
		SalesPhotoURL: d.SalesPhoto,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func clientUsageInfo(u domain.ClientUsage) catalogsdk.ClientUsageInfo {
	out := catalogsdk.ClientUsageInfo{
		ClientID:    u.ClientID,
		Name:        u.Name,
		Email:       u.Email,
		DemosOpened: u.DemosOpened,
		TotalOpens:  u.TotalOpens,
		TotalLogins: u.TotalLogins,
	}
	if !u.LastActivity.IsZero() {
		last := u.LastActivity
		out.LastActivity = &last
	}
	return out
}

func activityInfo(a domain.Activity) catalogsdk.ActivityInfo {
	return catalogsdk.ActivityInfo{
		ID:        a.ID,
		ClientID:  a.ClientID,
		DemoID:    a.DemoID,
		Type:      string(a.Type),
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}
