package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

func staff() []*loader.Loader {
	return []*loader.Loader{
		departments(),
		staffMembers(),
		housekeepingTasks(),
		maintenanceRequests(),
	}
}

func departments() *loader.Loader {
	return &loader.Loader{
		Kind:  "departments",
		Table: "departments",
		Needs: []string{"properties"},
		Rows: func(b *loader.Build) error {
			for _, property := range b.Cache.All("properties") {
				for _, name := range []string{"Front Office", "Housekeeping", "Maintenance", "F&B"} {
					id := b.IDs.Next().String()
					b.Emit(loader.Row{
						"id":          id,
						"tenant_id":   property["tenant_id"],
						"property_id": property["id"],
						"name":        name,
						"created_at":  b.Gen.Now(),
					})
					b.Share(registry.Record{
						"id": id, "tenant_id": property["tenant_id"],
						"property_id": property["id"],
					})
				}
			}
			return nil
		},
	}
}

func staffMembers() *loader.Loader {
	return &loader.Loader{
		Kind:  "staff_members",
		Table: "staff_members",
		Needs: []string{"departments"},
		Count: 60,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				dept := b.Cache.Pick("departments")
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":            id,
					"tenant_id":     dept["tenant_id"],
					"property_id":   dept["property_id"],
					"department_id": dept["id"],
					"full_name":     b.Gen.FullName(),
					"email":         b.Gen.Email(),
					"position":      b.Gen.Pick([]string{"Supervisor", "Attendant", "Technician", "Receptionist"}),
					"shift":         b.Gen.Pick([]string{"MORNING", "EVENING", "NIGHT"}),
					"is_active":     b.Gen.Chance(92),
					"created_at":    b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": dept["tenant_id"],
					"property_id": dept["property_id"],
				})
			}
			return nil
		},
	}
}

func housekeepingTasks() *loader.Loader {
	return &loader.Loader{
		Kind:  "housekeeping_tasks",
		Table: "housekeeping_tasks",
		Needs: []string{"rooms", "staff_members"},
		Count: 120,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				room := b.Cache.Pick("rooms")
				member := b.Cache.PickBy("staff_members", propertyOf(room))
				var assignee any
				if member != nil {
					assignee = member["id"]
				}
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   room["tenant_id"],
					"property_id": room["property_id"],
					"room_id":     room["id"],
					"assigned_to": assignee,
					"task_type":   b.Gen.Pick([]string{"DAILY_CLEAN", "DEEP_CLEAN", "TURNDOWN", "INSPECTION"}),
					"status":      b.Gen.Pick([]string{"PENDING", "IN_PROGRESS", "DONE"}),
					"due_at":      b.Gen.FutureDate(3),
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func maintenanceRequests() *loader.Loader {
	return &loader.Loader{
		Kind:  "maintenance_requests",
		Table: "maintenance_requests",
		Needs: []string{"rooms"},
		Count: 40,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				room := b.Cache.Pick("rooms")
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   room["tenant_id"],
					"property_id": room["property_id"],
					"room_id":     room["id"],
					"category":    b.Gen.Pick([]string{"PLUMBING", "ELECTRICAL", "HVAC", "FURNITURE"}),
					"priority":    b.Gen.Pick([]string{"LOW", "MEDIUM", "HIGH"}),
					"description": b.Gen.Sentence(),
					"status":      b.Gen.Pick([]string{"OPEN", "IN_PROGRESS", "RESOLVED"}),
					"reported_at": b.Gen.PastDate(14),
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
