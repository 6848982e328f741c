package utils

import (
	"math/rand"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

var gardenStyles = []string{"后院", "阳台", "屋顶", "社区", "庭院"}

var zoneNames = []string{"香草区", "蔬菜区", "花卉区", "育苗区", "果园区", "藤架区"}

// 常见植物及其学名，种子数据里随机挑选
var plantCatalog = []struct {
	Name    string
	Species string
}{
	{"番茄", "Solanum lycopersicum"},
	{"黄瓜", "Cucumis sativus"},
	{"辣椒", "Capsicum annuum"},
	{"茄子", "Solanum melongena"},
	{"生菜", "Lactuca sativa"},
	{"草莓", "Fragaria ananassa"},
	{"罗勒", "Ocimum basilicum"},
	{"薄荷", "Mentha spicata"},
	{"迷迭香", "Salvia rosmarinus"},
	{"薰衣草", "Lavandula angustifolia"},
	{"百里香", "Thymus vulgaris"},
	{"向日葵", "Helianthus annuus"},
}

var growthStages = []domain.GrowthStage{
	domain.StageSeedling,
	domain.StageVegetative,
	domain.StageFlowering,
	domain.StageMature,
}

var soilConditions = []domain.SoilCondition{
	domain.SoilSandy,
	domain.SoilLoamy,
	domain.SoilClay,
}

var letters = []rune("abcdefghijklmnopqrstuvwxyz")
var digits = "0123456789"

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

func GenerateRandomGarden(emailDomainName string) *domain.Garden {
	style := gardenStyles[rand.Intn(len(gardenStyles))]
	id := GenerateRandomID(3, 3)

	return &domain.Garden{
		Name:        style + "花园" + id,
		Description: "随机生成的" + style + "花园，仅用于测试",
		OwnerEmail:  id + "@" + emailDomainName,
	}
}

func GenerateRandomZone(gardenID int64) *domain.Zone {
	name := zoneNames[rand.Intn(len(zoneNames))]

	return &domain.Zone{
		GardenID:    gardenID,
		Name:        name + GenerateRandomID(0, 3),
		Description: "随机生成的" + name,
		Width:       float64(rand.Intn(40)+10) / 10, // 1.0~4.9 米
		Length:      float64(rand.Intn(40)+10) / 10,
	}
}

func GenerateRandomPlant(zoneID int64) *domain.Plant {
	entry := plantCatalog[rand.Intn(len(plantCatalog))]

	return &domain.Plant{
		ZoneID:           zoneID,
		Name:             entry.Name + GenerateRandomID(0, 2),
		Species:          entry.Species,
		GrowthStage:      growthStages[rand.Intn(len(growthStages))],
		SoilCondition:    soilConditions[rand.Intn(len(soilConditions))],
		PlantedAt:        time.Now().Add(-time.Duration(rand.Intn(90)+1) * 24 * time.Hour),
		RequiredArea:     float64(rand.Intn(9)+1) / 10, // 0.1~0.9 平方米
		NeedsWatering:    true,                         // 所有植物都要浇水
		NeedsFertilizing: rand.Intn(2) == 0,
		NeedsPruning:     rand.Intn(2) == 0,
		NeedsHarvesting:  rand.Intn(2) == 0,
		NeedsWeeding:     rand.Intn(2) == 0,
	}
}

func GenerateRandomSnapshot() domain.EnvironmentalSnapshot {
	return domain.EnvironmentalSnapshot{
		Temperature: float64(rand.Intn(350)) / 10, // 0~35°C
		Humidity:    float64(rand.Intn(1000)) / 10,
		Rainfall:    float64(rand.Intn(200)) / 10,
		WindSpeed:   float64(rand.Intn(300)) / 10,
	}
}
