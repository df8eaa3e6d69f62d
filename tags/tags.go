package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Floor      = donburi.NewTag().SetName("Floor")
	Wall       = donburi.NewTag().SetName("Wall")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Whirlpool  = donburi.NewTag().SetName("Whirlpool")
	Effect     = donburi.NewTag().SetName("Effect")
)
