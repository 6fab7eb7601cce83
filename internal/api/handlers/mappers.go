package handlers

import (
	"time"

	"bopLand/internal/api"
	"bopLand/internal/domain"
)

func mapValvesToAPI(valves []domain.Valve) []api.Valve {
	out := make([]api.Valve, len(valves))
	for i, v := range valves {
		out[i] = api.Valve{ID: v.ID, Acronym: v.Acronym, BOPID: v.BOPID, TestID: v.TestID}
	}
	return out
}

func mapPreventersToAPI(preventers []domain.Preventer) []api.Preventer {
	out := make([]api.Preventer, len(preventers))
	for i, p := range preventers {
		out[i] = api.Preventer{ID: p.ID, Acronym: p.Acronym, BOPID: p.BOPID, TestID: p.TestID}
	}
	return out
}

func mapBOPToAPI(bop *domain.BOP) api.BOP {
	return api.BOP{
		ID:         bop.ID,
		Sonda:      bop.Sonda,
		Latitude:   bop.Latitude,
		Longitude:  bop.Longitude,
		Valves:     mapValvesToAPI(bop.Valves),
		Preventers: mapPreventersToAPI(bop.Preventers),
	}
}

func mapTestToAPI(test *domain.Test) api.Test {
	var approvedAt *string
	if test.ApprovedAt != nil {
		formatted := test.ApprovedAt.UTC().Format(time.RFC3339)
		approvedAt = &formatted
	}

	return api.Test{
		ID:               test.ID,
		Name:             test.Name,
		BOPID:            test.BOPID,
		ApproverID:       test.ApproverID,
		ApprovedAt:       approvedAt,
		Status:           string(test.Status),
		TestedValves:     mapValvesToAPI(test.Valves),
		TestedPreventers: mapPreventersToAPI(test.Preventers),
	}
}

func mapPaginationToAPI(p domain.Pagination) api.Pagination {
	return api.Pagination{
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages,
		CurrentPage:  p.CurrentPage,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func mapBOPPageToAPI(page *domain.Page[domain.BOP]) api.ListResponse[api.BOP] {
	data := make([]api.BOP, len(page.Items))
	for i := range page.Items {
		data[i] = mapBOPToAPI(&page.Items[i])
	}
	return api.ListResponse[api.BOP]{Data: data, Pagination: mapPaginationToAPI(page.Pagination)}
}

func mapTestPageToAPI(page *domain.Page[domain.Test]) api.ListResponse[api.Test] {
	data := make([]api.Test, len(page.Items))
	for i := range page.Items {
		data[i] = mapTestToAPI(&page.Items[i])
	}
	return api.ListResponse[api.Test]{Data: data, Pagination: mapPaginationToAPI(page.Pagination)}
}

func mapEquipmentToAPI(items []domain.EquipmentItem) []api.EquipmentItem {
	out := make([]api.EquipmentItem, len(items))
	for i, item := range items {
		out[i] = api.EquipmentItem{ID: item.ID, Acronym: item.Acronym}
	}
	return out
}

func mapUserToAPI(user *domain.User) api.User {
	return api.User{ID: user.ID, Name: user.Name, Email: user.Email}
}

func mapForecastToAPI(f *domain.Forecast) api.Forecast {
	days := make([]api.ForecastDay, len(f.Days))
	for i, d := range f.Days {
		days[i] = api.ForecastDay{
			Date:    d.Date,
			Weather: d.Weather,
			MaxTemp: d.MaxTemp,
			MinTemp: d.MinTemp,
			UVIndex: d.UVIndex,
		}
	}
	return api.Forecast{City: f.City, State: f.State, UpdatedAt: f.UpdatedAt, Days: days}
}
