package impl

import "github.com/google/uuid"

// Cached view paths. Mutations name the views their change can render into
// and invalidate exactly those; everything else stays warm.
const (
	viewDashboard  = "/"
	viewBuildings  = "/buildings"
	viewCategories = "/categories"
	viewSettings   = "/settings"
	viewUsers      = "/users"
)

func buildingViews(buildingID uuid.UUID) []string {
	return []string{viewDashboard, viewBuildings, viewBuildings + "/" + buildingID.String()}
}

func floorViews(buildingID, floorID uuid.UUID) []string {
	return []string{viewBuildings + "/" + buildingID.String(), "/floors/" + floorID.String()}
}

func roomViews(floorID, roomID uuid.UUID) []string {
	return []string{"/floors/" + floorID.String(), "/rooms/" + roomID.String()}
}

func equipmentViews(roomID, equipmentID uuid.UUID) []string {
	return []string{"/rooms/" + roomID.String(), equipmentDetailView(equipmentID)}
}

func equipmentDetailView(equipmentID uuid.UUID) string {
	return "/equipment/" + equipmentID.String()
}

func categoryViews() []string {
	return []string{viewCategories}
}

func settingViews() []string {
	return []string{viewDashboard, viewSettings}
}

func userViews(userID uuid.UUID) []string {
	return []string{viewUsers, viewUsers + "/" + userID.String()}
}
