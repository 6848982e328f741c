package domain

import "time"

type Zone struct {
	ID          int64     `json:"id"`
	GardenID    int64     `json:"gardenID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Width       float64   `json:"width"`  // 单位：米
	Length      float64   `json:"length"` // 单位：米
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

// 区域的可用面积，单位：平方米
func (z *Zone) Area() float64 {
	return z.Width * z.Length
}
