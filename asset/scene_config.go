package asset

// DefaultSceneConfig returns the default scene YAML configuration
// Positions are relative to the inset brain rectangle, rates are per frame at ~60Hz
const DefaultSceneConfig = `
# === Hotspot layout ===
required: 5
click_radius: 3
inset: { top: 0.10, bottom: 0.16, left: 0.06, right: 0.06 }

hotspots:
  - { x: 0.35, y: 0.55, label: "LLM" }
  - { x: 0.50, y: 0.40, label: "Gen AI" }
  - { x: 0.65, y: 0.55, label: "Deep Learning" }
  - { x: 0.45, y: 0.72, label: "Neural Network" }
  - { x: 0.65, y: 0.72, label: "Machine Learning" }

# === Colors ===
palette: ["#ff3b3b", "#1ce5ff", "#ffd60a", "#4cd137", "#1e90ff"]
theme: "#ffae00"

# === Animation ===
reveal:
  damping: 0.045
  partial: 50

links:
  step: 0.035
  curvature: 0.25
  resolution: 50

nodes:
  pulse_start: 4
  pulse_decay: 0.25
  label_fade: 0.03

recombine:
  converge_rate: 0.1
  flash_start: 0.5
  flash_decay: 0.03
  merge_rate: 0.025
  merge_text: "AI"
  zoom_out_delay: 2500ms
  media_delay: 3500ms
  zoom_duration: 900ms

ambient:
  count: 120
  speed: 0.3

loop: true
`
