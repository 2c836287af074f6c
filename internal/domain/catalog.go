package domain

import "time"

type Category struct {
	ID        int64
	Name      string
	Avatar    string
	CreatedAt time.Time
}

type Karat struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Geofence struct {
	ID     int64
	Region string
}
