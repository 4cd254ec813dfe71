package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()
