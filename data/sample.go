package data

// SampleMoves is a small bundled move table covering the move categories and
// priority tiers the engine's tests exercise: a fast-priority move, an
// ordinary physical/special pair, and the reserved Struggle fallback.
const SampleMoves = `
moves:
  - id: tackle
    name: Tackle
    type: normal
    category: physical
    power: 40
    accuracy: 100
    pp: 35
    priority: 0
  - id: ember
    name: Ember
    type: fire
    category: special
    power: 40
    accuracy: 100
    pp: 25
    priority: 0
  - id: quick_attack
    name: Quick Attack
    type: normal
    category: physical
    power: 40
    accuracy: 100
    pp: 30
    priority: 1
  - id: growl
    name: Growl
    type: normal
    category: status
    power: 0
    accuracy: 100
    pp: 40
    priority: 0
  - id: struggle
    name: Struggle
    type: normal
    category: physical
    power: 50
    accuracy: 100
    pp: 1
    priority: 0
`

// SampleTypeChart is a small bundled type chart covering the normal, fire,
// water, rock, and electric attacking types (against grass, rock, steel,
// flying and the like) used by the engine's tests.
const SampleTypeChart = `
chart:
  normal:
    rock: 0.5
    steel: 0.5
  fire:
    water: 0.5
    grass: 2
    rock: 0.5
  water:
    fire: 2
    grass: 0.5
  rock:
    fire: 2
    water: 1
    grass: 1
    flying: 2
  electric:
    water: 2
    flying: 2
    grass: 0.5
`

// SampleItems is a small bundled held-item table covering a choice item, a
// type-boost item, a focus survival item, and a recoil/heal pair.
const SampleItems = `
items:
  - id: choice_band
    name: Choice Band
    is_choice_item: true
    power_multiplier: 1.5
  - id: charcoal
    name: Charcoal
    type_boost: fire
    power_multiplier: 1.2
  - id: focus_sash
    name: Focus Sash
    prevents_ko: true
    requires_full_hp: true
    one_time_use: true
  - id: life_orb
    name: Life Orb
    power_multiplier: 1.3
    recoil_percent: 0.1
  - id: leftovers
    name: Leftovers
    heal_percent: 0.0625
`

// SampleSpecies is a small bundled species table.
const SampleSpecies = `
species:
  - dex_number: 1
    name: Bulbasaur
    types: [grass, poison]
    base_stats: {hp: 45, attack: 49, defense: 49, sp_attack: 65, sp_defense: 65, speed: 45}
    abilities: [overgrow]
  - dex_number: 4
    name: Charmander
    types: [fire]
    base_stats: {hp: 39, attack: 52, defense: 43, sp_attack: 60, sp_defense: 50, speed: 65}
    abilities: [blaze]
  - dex_number: 7
    name: Squirtle
    types: [water]
    base_stats: {hp: 44, attack: 48, defense: 65, sp_attack: 50, sp_defense: 64, speed: 43}
    abilities: [torrent]
`

// SampleRulesets is a small bundled ruleset table.
const SampleRulesets = `
rulesets:
  - tag: standard
    banned_moves: []
  - tag: ubers
    banned_moves: [struggle]
`
