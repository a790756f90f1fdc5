package game

// Scene names used by Game.
const (
	SceneIntro    = "intro"
	SceneAquarium = "aquarium"
	SceneGameOver = "game_over"
)

// Scene is one screen of the game.
type Scene interface {
	Name() string
	Update()
	Draw()
}

// SceneManager holds named scenes and forwards Update and Draw to the
// active one.
type SceneManager struct {
	scenes []Scene
	active Scene
}

// AddScene registers a scene. The first scene added becomes active.
// A scene whose name is already registered is ignored.
func (m *SceneManager) AddScene(s Scene) bool {
	if s == nil || m.find(s.Name()) != nil {
		return false
	}
	m.scenes = append(m.scenes, s)
	if m.active == nil {
		m.active = s
	}
	return true
}

// Replace swaps the registered scene with the same name, keeping it
// active if it was.
func (m *SceneManager) Replace(s Scene) {
	for i, existing := range m.scenes {
		if existing.Name() != s.Name() {
			continue
		}
		m.scenes[i] = s
		if m.active == existing {
			m.active = s
		}
		return
	}
	m.AddScene(s)
}

// Transition activates the named scene. Unknown names and the already
// active scene are ignored.
func (m *SceneManager) Transition(name string) bool {
	s := m.find(name)
	if s == nil || s == m.active {
		return false
	}
	m.active = s
	return true
}

// Active returns the active scene, or nil.
func (m *SceneManager) Active() Scene {
	return m.active
}

// ActiveName returns the active scene's name, or "".
func (m *SceneManager) ActiveName() string {
	if m.active == nil {
		return ""
	}
	return m.active.Name()
}

// Update updates the active scene.
func (m *SceneManager) Update() {
	if m.active != nil {
		m.active.Update()
	}
}

// Draw draws the active scene.
func (m *SceneManager) Draw() {
	if m.active != nil {
		m.active.Draw()
	}
}

func (m *SceneManager) find(name string) Scene {
	for _, s := range m.scenes {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// BannerScene shows a title card, such as the intro or game-over screen.
type BannerScene struct {
	name     string
	Title    string
	Subtitle string
	Duration int // frames until Done; 0 never finishes on its own

	frames int
	draw   func(title, subtitle string)
}

// NewBannerScene creates a banner. draw may be nil in headless runs.
func NewBannerScene(name, title, subtitle string, duration int, draw func(title, subtitle string)) *BannerScene {
	return &BannerScene{
		name:     name,
		Title:    title,
		Subtitle: subtitle,
		Duration: duration,
		draw:     draw,
	}
}

// Name returns the scene name.
func (b *BannerScene) Name() string { return b.name }

// Update counts frames shown.
func (b *BannerScene) Update() { b.frames++ }

// Draw renders the banner through the injected drawer.
func (b *BannerScene) Draw() {
	if b.draw != nil {
		b.draw(b.Title, b.Subtitle)
	}
}

// Done reports whether the banner has been shown for its duration.
func (b *BannerScene) Done() bool {
	return b.Duration > 0 && b.frames >= b.Duration
}

// Reset restarts the frame count.
func (b *BannerScene) Reset() { b.frames = 0 }
