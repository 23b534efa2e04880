package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	World   WorldConfig   `yaml:"world"`
}

type DisplayConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"` // Fixed simulation ticks per second
}

// PhysicsConfig holds values shared by every body. Units are per tick.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

type AttackConfig struct {
	Duration int     `yaml:"duration"` // frames
	Cooldown int     `yaml:"cooldown"` // frames, counted from attack start
	Range    float64 `yaml:"range"`    // pixels
	Band     string  `yaml:"band"`     // "full" or "middle"
}

type PlayerConfig struct {
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	MoveSpeed float64      `yaml:"moveSpeed"`
	JumpForce float64      `yaml:"jumpForce"`
	Attack    AttackConfig `yaml:"attack"`
}

type EnemyConfig struct {
	Width            float64      `yaml:"width"`
	Height           float64      `yaml:"height"`
	MaxHealth        int          `yaml:"maxHealth"`
	PatrolSpeed      float64      `yaml:"patrolSpeed"`
	ChaseSpeed       float64      `yaml:"chaseSpeed"`
	RetreatSpeed     float64      `yaml:"retreatSpeed"`
	JumpForce        float64      `yaml:"jumpForce"`
	DetectionRange   float64      `yaml:"detectionRange"`
	AttackRange      float64      `yaml:"attackRange"`
	RetreatThreshold int          `yaml:"retreatThreshold"`
	JumpMargin       float64      `yaml:"jumpMargin"`
	EscapeProximity  float64      `yaml:"escapeProximity"`
	BoundInset       float64      `yaml:"boundInset"`
	Attack           AttackConfig `yaml:"attack"`
}

type WorldConfig struct {
	Width       float64          `yaml:"width"`
	Height      float64          `yaml:"height"`
	Platforms   []RectConfig     `yaml:"platforms"`
	PlayerSpawn PositionConfig   `yaml:"playerSpawn"`
	EnemySpawn  EnemySpawnConfig `yaml:"enemySpawn"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EnemySpawnConfig struct {
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	Bounds BoundsConfig `yaml:"bounds"`
}

type BoundsConfig struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}
