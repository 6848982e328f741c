package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"

	"github.com/greenhaven-dev/garden-planner/backend/internal/config"
	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
	"github.com/greenhaven-dev/garden-planner/backend/internal/repository"
)

// 通知队列的名称，API 服务负责声明，cmd/notifier 负责消费
const QueueName = "notification_queue"

// 定时扫描即将到期的养护任务并把提醒发到消息队列。
// 排程核心只负责算出到期时间和优先级，真正的送达由队列下游的消费者完成
type Reminder struct {
	cfg     *config.Config
	repo    *repository.Repository
	channel *amqp.Channel
	cron    *cron.Cron
}

func NewReminder(cfg *config.Config, repo *repository.Repository, channel *amqp.Channel) *Reminder {
	return &Reminder{
		cfg:     cfg,
		repo:    repo,
		channel: channel,
		cron:    cron.New(),
	}
}

func (n *Reminder) Start() error {
	if _, err := n.cron.AddFunc(n.cfg.Schedule.ReminderSpec, n.scan); err != nil {
		return err
	}
	n.cron.Start()

	return nil
}

func (n *Reminder) Stop() {
	// Stop 返回的 context 会在正在执行的扫描结束后完成
	<-n.cron.Stop().Done()
}

func (n *Reminder) scan() {
	until := time.Now().Add(time.Duration(n.cfg.Schedule.ReminderWindow) * time.Hour)

	tasks, err := n.repo.GetPendingDueTasks(until)
	if err != nil {
		slog.Error("查询待提醒的养护任务失败", "error", err)
		return
	}

	for _, task := range tasks {
		if err := n.publish(task); err != nil {
			slog.Error("发送养护任务提醒失败", "entryID", task.EntryID, "error", err)
			continue
		}

		// 标记为已提醒，避免下一轮扫描重复发送。
		// 标记失败时最坏的情况是重复提醒一次，所以只记录日志
		if err := n.repo.MarkScheduleEntryNotified(task.EntryID, time.Now()); err != nil {
			slog.Error("标记任务已提醒失败", "entryID", task.EntryID, "error", err)
		}
	}

	if len(tasks) > 0 {
		slog.Info("养护任务提醒扫描完成", "count", len(tasks))
	}
}

func (n *Reminder) publish(task *domain.DueTask) error {
	message := domain.NotificationMessage{
		Type: "task_due",
		To:   task.OwnerEmail,
		Data: domain.TaskDueNotificationData{
			GardenName: task.GardenName,
			PlantName:  task.PlantName,
			TaskType:   task.TaskType,
			DueDate:    task.DueDate,
			Priority:   task.Priority,
		},
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(n.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return n.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
