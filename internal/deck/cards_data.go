package deck

// catalog holds the full 78-card Rider-Waite deck: 22 major arcana and four
// suits of 14. Meanings are short keyword phrases; the AI interpreter expands
// them into prose.
var catalog = []Card{
	// Major arcana
	{ID: "major_0", Name: "The Fool", Arcana: ArcanaMajor, Number: 0,
		Upright: "new beginnings, spontaneity, innocence, free spirit", Reversed: "recklessness, naivety, poor planning"},
	{ID: "major_1", Name: "The Magician", Arcana: ArcanaMajor, Number: 1,
		Upright: "willpower, skill, focus, manifestation", Reversed: "manipulation, scattered energy, untapped talent"},
	{ID: "major_2", Name: "The High Priestess", Arcana: ArcanaMajor, Number: 2,
		Upright: "intuition, mystery, inner wisdom, the subconscious", Reversed: "secrets withheld, disconnected intuition, repression"},
	{ID: "major_3", Name: "The Empress", Arcana: ArcanaMajor, Number: 3,
		Upright: "abundance, nurturing, creativity, nature", Reversed: "dependence, smothering, creative block"},
	{ID: "major_4", Name: "The Emperor", Arcana: ArcanaMajor, Number: 4,
		Upright: "authority, structure, control, stability", Reversed: "tyranny, rigidity, lack of discipline"},
	{ID: "major_5", Name: "The Hierophant", Arcana: ArcanaMajor, Number: 5,
		Upright: "tradition, spiritual guidance, conformity, learning", Reversed: "rebellion, unconventionality, personal beliefs"},
	{ID: "major_6", Name: "The Lovers", Arcana: ArcanaMajor, Number: 6,
		Upright: "love, partnership, choices, harmony", Reversed: "disharmony, imbalance, misaligned values"},
	{ID: "major_7", Name: "The Chariot", Arcana: ArcanaMajor, Number: 7,
		Upright: "victory, willpower, determination, control", Reversed: "lack of direction, aggression, obstacles"},
	{ID: "major_8", Name: "Strength", Arcana: ArcanaMajor, Number: 8,
		Upright: "inner strength, courage, patience, compassion", Reversed: "self-doubt, weakness, raw emotion"},
	{ID: "major_9", Name: "The Hermit", Arcana: ArcanaMajor, Number: 9,
		Upright: "introspection, solitude, guidance, inner wisdom", Reversed: "isolation, loneliness, withdrawal"},
	{ID: "major_10", Name: "Wheel of Fortune", Arcana: ArcanaMajor, Number: 10,
		Upright: "destiny, cycles, turning point, luck", Reversed: "bad luck, resistance to change, broken cycles"},
	{ID: "major_11", Name: "Justice", Arcana: ArcanaMajor, Number: 11,
		Upright: "fairness, truth, cause and effect, law", Reversed: "dishonesty, unfairness, avoiding accountability"},
	{ID: "major_12", Name: "The Hanged Man", Arcana: ArcanaMajor, Number: 12,
		Upright: "surrender, new perspective, letting go, pause", Reversed: "stalling, resistance, indecision"},
	{ID: "major_13", Name: "Death", Arcana: ArcanaMajor, Number: 13,
		Upright: "endings, transformation, transition, release", Reversed: "fear of change, stagnation, holding on"},
	{ID: "major_14", Name: "Temperance", Arcana: ArcanaMajor, Number: 14,
		Upright: "balance, moderation, patience, purpose", Reversed: "imbalance, excess, lack of long-term vision"},
	{ID: "major_15", Name: "The Devil", Arcana: ArcanaMajor, Number: 15,
		Upright: "attachment, addiction, restriction, materialism", Reversed: "release, breaking free, reclaiming power"},
	{ID: "major_16", Name: "The Tower", Arcana: ArcanaMajor, Number: 16,
		Upright: "sudden upheaval, revelation, awakening, chaos", Reversed: "averted disaster, fear of change, delayed collapse"},
	{ID: "major_17", Name: "The Star", Arcana: ArcanaMajor, Number: 17,
		Upright: "hope, renewal, inspiration, serenity", Reversed: "despair, lack of faith, disconnection"},
	{ID: "major_18", Name: "The Moon", Arcana: ArcanaMajor, Number: 18,
		Upright: "illusion, intuition, uncertainty, the subconscious", Reversed: "clarity, released fear, confusion lifting"},
	{ID: "major_19", Name: "The Sun", Arcana: ArcanaMajor, Number: 19,
		Upright: "joy, success, vitality, positivity", Reversed: "temporary gloom, overconfidence, dimmed optimism"},
	{ID: "major_20", Name: "Judgement", Arcana: ArcanaMajor, Number: 20,
		Upright: "rebirth, reckoning, inner calling, absolution", Reversed: "self-doubt, harsh judgement, ignoring the call"},
	{ID: "major_21", Name: "The World", Arcana: ArcanaMajor, Number: 21,
		Upright: "completion, accomplishment, wholeness, travel", Reversed: "incompletion, loose ends, delayed success"},

	// Wands
	{ID: "wands_ace", Name: "Ace of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 1,
		Upright: "inspiration, new opportunity, creative spark", Reversed: "false starts, delays, lack of motivation"},
	{ID: "wands_two", Name: "Two of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 2,
		Upright: "planning, foresight, personal power", Reversed: "fear of the unknown, playing it safe, poor planning"},
	{ID: "wands_three", Name: "Three of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 3,
		Upright: "expansion, progress, looking ahead", Reversed: "obstacles, delays abroad, limited vision"},
	{ID: "wands_four", Name: "Four of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 4,
		Upright: "celebration, homecoming, harmony", Reversed: "instability at home, transition, cancelled plans"},
	{ID: "wands_five", Name: "Five of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 5,
		Upright: "competition, conflict, rivalry", Reversed: "conflict avoidance, tension released, compromise"},
	{ID: "wands_six", Name: "Six of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 6,
		Upright: "victory, recognition, confidence", Reversed: "fall from grace, egotism, lack of recognition"},
	{ID: "wands_seven", Name: "Seven of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 7,
		Upright: "defence, standing your ground, perseverance", Reversed: "overwhelm, giving up, exhaustion"},
	{ID: "wands_eight", Name: "Eight of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 8,
		Upright: "speed, momentum, swift news", Reversed: "delays, frustration, scattered energy"},
	{ID: "wands_nine", Name: "Nine of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 9,
		Upright: "resilience, last stand, persistence", Reversed: "fatigue, paranoia, defensiveness"},
	{ID: "wands_ten", Name: "Ten of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 10,
		Upright: "burden, responsibility, hard work", Reversed: "release of burden, delegation, burnout"},
	{ID: "wands_page", Name: "Page of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 11,
		Upright: "enthusiasm, exploration, free spirit", Reversed: "lack of direction, procrastination, hasty news"},
	{ID: "wands_knight", Name: "Knight of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 12,
		Upright: "energy, passion, adventurous action", Reversed: "impulsiveness, recklessness, scattered drive"},
	{ID: "wands_queen", Name: "Queen of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 13,
		Upright: "confidence, warmth, determination", Reversed: "jealousy, insecurity, demanding nature"},
	{ID: "wands_king", Name: "King of Wands", Arcana: ArcanaMinor, Suit: SuitWands, Number: 14,
		Upright: "leadership, vision, boldness", Reversed: "impulsive leadership, arrogance, ruthlessness"},

	// Cups
	{ID: "cups_ace", Name: "Ace of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 1,
		Upright: "new love, compassion, emotional awakening", Reversed: "blocked emotions, emptiness, repressed feelings"},
	{ID: "cups_two", Name: "Two of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 2,
		Upright: "partnership, mutual attraction, unity", Reversed: "imbalance, broken bond, tension"},
	{ID: "cups_three", Name: "Three of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 3,
		Upright: "friendship, celebration, community", Reversed: "gossip, isolation, overindulgence"},
	{ID: "cups_four", Name: "Four of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 4,
		Upright: "apathy, contemplation, missed opportunity", Reversed: "renewed interest, acceptance, moving on"},
	{ID: "cups_five", Name: "Five of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 5,
		Upright: "loss, grief, regret", Reversed: "acceptance, forgiveness, recovery"},
	{ID: "cups_six", Name: "Six of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 6,
		Upright: "nostalgia, childhood memories, kindness", Reversed: "living in the past, unrealistic memories, moving forward"},
	{ID: "cups_seven", Name: "Seven of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 7,
		Upright: "choices, illusion, wishful thinking", Reversed: "clarity of choice, determination, sober judgement"},
	{ID: "cups_eight", Name: "Eight of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 8,
		Upright: "walking away, disillusionment, seeking deeper meaning", Reversed: "fear of leaving, drifting, one more try"},
	{ID: "cups_nine", Name: "Nine of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 9,
		Upright: "contentment, satisfaction, wishes fulfilled", Reversed: "smugness, dissatisfaction, greed"},
	{ID: "cups_ten", Name: "Ten of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 10,
		Upright: "harmony, family happiness, emotional fulfilment", Reversed: "broken home, disharmony, misaligned values"},
	{ID: "cups_page", Name: "Page of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 11,
		Upright: "creative message, intuition, sensitivity", Reversed: "emotional immaturity, escapism, blocked creativity"},
	{ID: "cups_knight", Name: "Knight of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 12,
		Upright: "romance, charm, an offer", Reversed: "moodiness, unrealistic promises, disappointment"},
	{ID: "cups_queen", Name: "Queen of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 13,
		Upright: "compassion, emotional security, calm", Reversed: "emotional insecurity, codependency, martyrdom"},
	{ID: "cups_king", Name: "King of Cups", Arcana: ArcanaMinor, Suit: SuitCups, Number: 14,
		Upright: "emotional balance, diplomacy, wisdom", Reversed: "coldness, moodiness, emotional manipulation"},

	// Swords
	{ID: "swords_ace", Name: "Ace of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 1,
		Upright: "clarity, breakthrough, truth", Reversed: "confusion, clouded judgement, misinformation"},
	{ID: "swords_two", Name: "Two of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 2,
		Upright: "stalemate, difficult choice, avoidance", Reversed: "indecision lifting, information revealed, pressure"},
	{ID: "swords_three", Name: "Three of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 3,
		Upright: "heartbreak, sorrow, painful truth", Reversed: "healing, forgiveness, recovery from grief"},
	{ID: "swords_four", Name: "Four of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 4,
		Upright: "rest, recuperation, contemplation", Reversed: "restlessness, burnout, stagnation"},
	{ID: "swords_five", Name: "Five of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 5,
		Upright: "conflict, hollow victory, betrayal", Reversed: "reconciliation, making amends, lingering resentment"},
	{ID: "swords_six", Name: "Six of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 6,
		Upright: "transition, moving on, calmer waters", Reversed: "resistance to change, unfinished business, baggage"},
	{ID: "swords_seven", Name: "Seven of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 7,
		Upright: "deception, strategy, acting alone", Reversed: "coming clean, conscience, exposure"},
	{ID: "swords_eight", Name: "Eight of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 8,
		Upright: "restriction, self-imposed limits, victim mindset", Reversed: "self-acceptance, release, new perspective"},
	{ID: "swords_nine", Name: "Nine of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 9,
		Upright: "anxiety, worry, sleepless nights", Reversed: "hope returning, facing fears, recovery"},
	{ID: "swords_ten", Name: "Ten of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 10,
		Upright: "painful ending, rock bottom, betrayal", Reversed: "recovery, resisting an ending, lessons learned"},
	{ID: "swords_page", Name: "Page of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 11,
		Upright: "curiosity, vigilance, new ideas", Reversed: "gossip, haste, all talk and no action"},
	{ID: "swords_knight", Name: "Knight of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 12,
		Upright: "ambition, decisive action, directness", Reversed: "impulsiveness, burnout, unfocused aggression"},
	{ID: "swords_queen", Name: "Queen of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 13,
		Upright: "independence, clear boundaries, honest judgement", Reversed: "coldness, bitterness, harsh words"},
	{ID: "swords_king", Name: "King of Swords", Arcana: ArcanaMinor, Suit: SuitSwords, Number: 14,
		Upright: "intellect, authority, truthful counsel", Reversed: "manipulation, cruelty, abuse of power"},

	// Pentacles
	{ID: "pentacles_ace", Name: "Ace of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 1,
		Upright: "new opportunity, prosperity, manifestation", Reversed: "missed chance, poor investment, scarcity thinking"},
	{ID: "pentacles_two", Name: "Two of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 2,
		Upright: "balance, adaptability, juggling priorities", Reversed: "overcommitment, disorganisation, imbalance"},
	{ID: "pentacles_three", Name: "Three of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 3,
		Upright: "teamwork, craftsmanship, recognition of skill", Reversed: "lack of teamwork, mediocrity, misalignment"},
	{ID: "pentacles_four", Name: "Four of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 4,
		Upright: "security, saving, control over resources", Reversed: "greed, fear of loss, letting go of control"},
	{ID: "pentacles_five", Name: "Five of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 5,
		Upright: "hardship, insecurity, feeling left out", Reversed: "recovery, aid arriving, spiritual poverty ending"},
	{ID: "pentacles_six", Name: "Six of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 6,
		Upright: "generosity, charity, giving and receiving", Reversed: "strings attached, debt, one-sided giving"},
	{ID: "pentacles_seven", Name: "Seven of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 7,
		Upright: "patience, long-term view, investment", Reversed: "impatience, wasted effort, poor returns"},
	{ID: "pentacles_eight", Name: "Eight of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 8,
		Upright: "diligence, mastery, skill development", Reversed: "perfectionism, lack of focus, uninspired work"},
	{ID: "pentacles_nine", Name: "Nine of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 9,
		Upright: "self-sufficiency, luxury, earned reward", Reversed: "overwork, financial setback, hustling without rest"},
	{ID: "pentacles_ten", Name: "Ten of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 10,
		Upright: "legacy, family wealth, lasting success", Reversed: "family disputes, instability, fleeting success"},
	{ID: "pentacles_page", Name: "Page of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 11,
		Upright: "ambition, study, new venture", Reversed: "procrastination, lack of progress, daydreaming"},
	{ID: "pentacles_knight", Name: "Knight of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 12,
		Upright: "reliability, hard work, routine", Reversed: "boredom, stagnation, perfectionism"},
	{ID: "pentacles_queen", Name: "Queen of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 13,
		Upright: "practicality, nurturing abundance, groundedness", Reversed: "self-neglect, work-home imbalance, smothering"},
	{ID: "pentacles_king", Name: "King of Pentacles", Arcana: ArcanaMinor, Suit: SuitPentacles, Number: 14,
		Upright: "wealth, discipline, dependable leadership", Reversed: "stubbornness, greed, obsession with status"},
}
