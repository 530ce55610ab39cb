package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

func smartRooms() []*loader.Loader {
	return []*loader.Loader{
		smartRoomDevices(),
		roomEnergyUsage(),
		deviceEventsLog(),
	}
}

func smartRoomDevices() *loader.Loader {
	return &loader.Loader{
		Kind:  "smart_room_devices",
		Table: "smart_room_devices",
		Needs: []string{"rooms"},
		Count: 150,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				room := b.Cache.Pick("rooms")
				id := b.IDs.Next().String()
				deviceType := b.Gen.Pick([]string{"THERMOSTAT", "SMART_LOCK", "LIGHTING", "OCCUPANCY_SENSOR"})
				b.Emit(loader.Row{
					"id":            id,
					"tenant_id":     room["tenant_id"],
					"property_id":   room["property_id"],
					"room_id":       room["id"],
					"device_type":   deviceType,
					"serial_number": b.Gen.Code("DEV", 10),
					"firmware":      b.Gen.Pick([]string{"1.4.2", "2.0.1", "2.1.0"}),
					"is_online":     b.Gen.Chance(90),
					"created_at":    b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": room["tenant_id"],
					"property_id": room["property_id"], "room_id": room["id"],
					"device_type": deviceType,
				})
			}
			return nil
		},
	}
}

func roomEnergyUsage() *loader.Loader {
	return &loader.Loader{
		Kind:  "room_energy_usage",
		Table: "room_energy_usage",
		Needs: []string{"smart_room_devices"},
		Count: 300,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				device := b.Cache.Pick("smart_room_devices")
				b.Emit(loader.Row{
					"id":           b.IDs.Next().String(),
					"tenant_id":    device["tenant_id"],
					"room_id":      device["room_id"],
					"device_id":    device["id"],
					"reading_date": b.Gen.PastDate(30),
					"kwh":          float64(b.Gen.Between(1, 45)) / 2,
					"created_at":   b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func deviceEventsLog() *loader.Loader {
	return &loader.Loader{
		Kind:  "device_events_log",
		Table: "device_events_log",
		Needs: []string{"smart_room_devices"},
		Count: 400,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				device := b.Cache.Pick("smart_room_devices")
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   device["tenant_id"],
					"device_id":   device["id"],
					"event_type":  b.Gen.Pick([]string{"ONLINE", "OFFLINE", "SETPOINT_CHANGED", "DOOR_UNLOCKED", "BATTERY_LOW"}),
					"payload":     map[string]any{"device_type": device["device_type"]},
					"occurred_at": b.Gen.PastDate(14),
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
