package domain

import "time"

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

// 一条待提醒的养护任务，由提醒扫描从数据库中查出，
// 附带组装通知所需要的植物和花园信息
type DueTask struct {
	EntryID    string    `json:"entryID"`
	GardenName string    `json:"gardenName"`
	PlantName  string    `json:"plantName"`
	OwnerEmail string    `json:"ownerEmail"`
	TaskType   TaskType  `json:"taskType"`
	DueDate    time.Time `json:"dueDate"`
	Priority   int32     `json:"priority"`
}

type TaskDueNotificationData struct {
	GardenName string    `json:"gardenName"`
	PlantName  string    `json:"plantName"`
	TaskType   TaskType  `json:"taskType"`
	DueDate    time.Time `json:"dueDate"`
	Priority   int32     `json:"priority"`
}
