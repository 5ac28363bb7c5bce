package types

// EntityID — идентификатор сущности в ECS. Выдаётся по возрастанию, 0 не используется.
type EntityID uint64
