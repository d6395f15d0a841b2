package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishFileStored 发布 tv.file.stored 事件。
// 用于文件落盘且元数据入库后，通知下游流程（如扫描、统计等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishFileStored(pub message.Publisher, payload FileStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileStored, msg)
}

// ParseFileStored 将 Watermill 消息解析为强类型 Envelope（FileStoredPayload）。
func ParseFileStored(msg *message.Message) (Message[FileStoredPayload], error) {
	return ParseWatermillMessage[FileStoredPayload](msg)
}

// PublishFileDeleted 发布 tv.file.deleted 事件。
func PublishFileDeleted(pub message.Publisher, payload FileDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileDeleted, msg)
}

// ParseFileDeleted 将 Watermill 消息解析为强类型 Envelope（FileDeletedPayload）。
func ParseFileDeleted(msg *message.Message) (Message[FileDeletedPayload], error) {
	return ParseWatermillMessage[FileDeletedPayload](msg)
}

// PublishUnlinkFailed 发布 tv.file.unlink_failed 对账事件。
// 元数据删除成功但物理删除失败时发出，后台订阅者据此核对磁盘与数据库。
func PublishUnlinkFailed(pub message.Publisher, payload UnlinkFailedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileUnlinkFailed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileUnlinkFailed, msg)
}

// ParseUnlinkFailed 将 Watermill 消息解析为强类型 Envelope（UnlinkFailedPayload）。
func ParseUnlinkFailed(msg *message.Message) (Message[UnlinkFailedPayload], error) {
	return ParseWatermillMessage[UnlinkFailedPayload](msg)
}

// PublishCleanupCompleted 发布 tv.cleanup.completed 事件。
func PublishCleanupCompleted(pub message.Publisher, payload CleanupCompletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCleanupCompleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCleanupCompleted, msg)
}
