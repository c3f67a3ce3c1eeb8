package system

import "github.com/lixenwraith/bird-shooter/engine"

// Systems groups the gameplay systems registered on a world
type Systems struct {
	Movement *MovementSystem
	Aim      *AimSystem
	Weapon   *WeaponSystem
	Bullet   *BulletSystem
	Cull     *CullSystem
}

// RegisterAll creates the gameplay systems and adds them to world
// Execution order: movement, aim, weapon, bullet, cull
func RegisterAll(world *engine.World) Systems {
	s := Systems{
		Movement: NewMovementSystem(world).(*MovementSystem),
		Aim:      NewAimSystem(world).(*AimSystem),
		Weapon:   NewWeaponSystem(world).(*WeaponSystem),
		Bullet:   NewBulletSystem(world).(*BulletSystem),
		Cull:     NewCullSystem(world).(*CullSystem),
	}
	world.AddSystem(s.Movement)
	world.AddSystem(s.Aim)
	world.AddSystem(s.Weapon)
	world.AddSystem(s.Bullet)
	world.AddSystem(s.Cull)
	return s
}
