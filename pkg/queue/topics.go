// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：tv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：file(文件存储)、cleanup(清理)等
// 动作：存储相关(stored/deleted)、故障相关(unlink_failed)

const (
	// 文件存储领域.
	TopicFileStored       = "tv.file.stored"        // 文件已落盘且元数据入库
	TopicFileDeleted      = "tv.file.deleted"       // 文件元数据已删除（物理文件尽力删除）
	TopicFileUnlinkFailed = "tv.file.unlink_failed" // 元数据删除成功但物理删除失败，等待对账

	// 清理领域.
	TopicCleanupCompleted = "tv.cleanup.completed" // 一轮清理结束，附带统计
)

// 主题分组，用于批量操作或权限控制.
var (
	// 文件相关主题集合.
	FileTopics = []string{
		TopicFileStored, TopicFileDeleted, TopicFileUnlinkFailed,
	}

	// 清理相关主题集合.
	CleanupTopics = []string{
		TopicCleanupCompleted,
	}
)
