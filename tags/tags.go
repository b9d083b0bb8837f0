package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for fighter bodies
const (
	ResolvFighter = "fighter"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
)
