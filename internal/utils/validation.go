package utils

import (
	"fmt"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

// 检查区域的剩余面积是否容得下指定面积的新植物
func ValidateZoneCapacity(zone *domain.Zone, plants []*domain.Plant, requiredArea float64) error {
	used := 0.0
	for _, plant := range plants {
		used += plant.RequiredArea
	}

	remaining := zone.Area() - used
	if requiredArea > remaining {
		return fmt.Errorf("区域剩余面积不足，剩余 %.2f 平方米，新植物需要 %.2f 平方米", remaining, requiredArea)
	}

	return nil
}
