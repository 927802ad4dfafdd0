package i18n

// texts is the reply catalog. English is complete; other languages fall back
// to English per key when a translation is missing.
var texts = map[Lang]map[string]string{
	LangEN: {
		"welcome":             "🔮 Welcome to Glas Taro, %s! Pick an option below.",
		"menu_reading":        "🎴 Start a reading",
		"menu_daily":          "📅 Daily card",
		"menu_learn":          "📚 Learn tarot",
		"menu_language":       "🌍 Language",
		"menu_help":           "❓ Help",
		"back_main":           "🏠 Main menu",
		"help_text":           "Commands:\n/reading — start a tarot reading\n/daily — your card of the day\n/learn — study the cards\n/language — change language\n/cancel — cancel the current reading",
		"spread_select":       "Choose a spread:",
		"spread_single":       "Single card",
		"spread_three_card":   "Three cards (past / present / future)",
		"spread_love":         "Love spread",
		"spread_career":       "Career spread",
		"spread_celtic_cross": "Celtic cross (10 cards)",
		"ask_question":        "You picked: %s.\nType your question, or skip it for general guidance.",
		"skip_question":       "Skip the question",
		"reading_loading":     "🔮 The cards are being laid out…",
		"result_title":        "🔮 %s — your reading",
		"result_question":     "❓ Question: %s",
		"result_cards":        "🎴 Cards drawn:",
		"result_reading":      "📖 Interpretation:",
		"result_blessing":     "✨ May the wisdom of the cards guide your way.",
		"quota_exceeded":      "You have used all your readings for now. Try again after %s.",
		"invalid_selection":   "That is not one of the options — please pick a spread from the menu.",
		"not_in_reading":      "There is no reading in progress. Use /reading to start one.",
		"reading_in_progress": "A reading is already in progress — finish it or /cancel first.",
		"cancelled":           "Reading cancelled. The cards will wait for you.",
		"nothing_to_cancel":   "Nothing to cancel.",
		"stale_reading":       "This reading was cancelled before the cards finished speaking.",
		"degraded_reading":    "The spirits are quiet today — the cards above still hold their traditional meanings, listed next to each card. Please try a full reading again later.",
		"daily_title":         "🌅 Your card of the day",
		"daily_guidance":      "📖 Guidance:",
		"learn_center":        "📚 What would you like to study?",
		"learn_major":         "🌟 Major arcana",
		"learn_minor":         "🎴 Minor arcana",
		"card_not_found":      "I do not know that card.",
		"language_select":     "Choose your language:",
		"language_changed":    "Language switched to English.",
		"error_general":       "😔 Something went wrong, please try again.",
		"upright":             "upright",
		"reversed":            "reversed",
	},
	LangRU: {
		"welcome":             "🔮 Добро пожаловать в «Глас Таро», %s! Выберите действие.",
		"menu_reading":        "🎴 Начать гадание",
		"menu_daily":          "📅 Карта дня",
		"menu_learn":          "📚 Изучать таро",
		"menu_language":       "🌍 Язык",
		"menu_help":           "❓ Помощь",
		"back_main":           "🏠 Главное меню",
		"help_text":           "Команды:\n/reading — начать гадание\n/daily — карта дня\n/learn — изучение карт\n/language — сменить язык\n/cancel — отменить гадание",
		"spread_select":       "Выберите расклад:",
		"spread_single":       "Одна карта",
		"spread_three_card":   "Три карты (прошлое / настоящее / будущее)",
		"spread_love":         "Расклад на любовь",
		"spread_career":       "Расклад на карьеру",
		"spread_celtic_cross": "Кельтский крест (10 карт)",
		"ask_question":        "Вы выбрали: %s.\nНапишите свой вопрос или пропустите его.",
		"skip_question":       "Пропустить вопрос",
		"reading_loading":     "🔮 Карты раскладываются…",
		"result_title":        "🔮 %s — ваш расклад",
		"result_question":     "❓ Вопрос: %s",
		"result_cards":        "🎴 Выпавшие карты:",
		"result_reading":      "📖 Толкование:",
		"result_blessing":     "✨ Пусть мудрость карт укажет вам путь.",
		"quota_exceeded":      "Лимит гаданий исчерпан. Попробуйте снова после %s.",
		"invalid_selection":   "Такого варианта нет — выберите расклад из меню.",
		"not_in_reading":      "Гадание не начато. Используйте /reading.",
		"reading_in_progress": "Гадание уже идёт — завершите его или отправьте /cancel.",
		"cancelled":           "Гадание отменено. Карты подождут.",
		"nothing_to_cancel":   "Нечего отменять.",
		"stale_reading":       "Это гадание было отменено до того, как карты договорили.",
		"degraded_reading":    "Духи сегодня молчат — но карты выше сохраняют свои традиционные значения, они указаны рядом с каждой картой. Попробуйте полное гадание позже.",
		"daily_title":         "🌅 Ваша карта дня",
		"daily_guidance":      "📖 Наставление:",
		"learn_center":        "📚 Что хотите изучить?",
		"learn_major":         "🌟 Старшие арканы",
		"learn_minor":         "🎴 Младшие арканы",
		"card_not_found":      "Такой карты я не знаю.",
		"language_select":     "Выберите язык:",
		"language_changed":    "Язык переключён на русский.",
		"error_general":       "😔 Что-то пошло не так, попробуйте ещё раз.",
		"upright":             "прямое",
		"reversed":            "перевёрнутое",
	},
	LangZH: {
		"welcome":             "🔮 欢迎来到 Glas Taro，%s！请选择操作。",
		"menu_reading":        "🎴 开始占卜",
		"menu_daily":          "📅 每日塔罗",
		"menu_learn":          "📚 学习塔罗",
		"menu_language":       "🌍 语言设置",
		"menu_help":           "❓ 帮助",
		"back_main":           "🏠 主菜单",
		"help_text":           "命令：\n/reading — 开始占卜\n/daily — 每日塔罗牌\n/learn — 学习塔罗\n/language — 切换语言\n/cancel — 取消当前占卜",
		"spread_select":       "请选择牌阵：",
		"spread_single":       "单张牌",
		"spread_three_card":   "三张牌（过去 / 现在 / 未来）",
		"spread_love":         "爱情牌阵",
		"spread_career":       "事业牌阵",
		"spread_celtic_cross": "凯尔特十字（10张牌）",
		"ask_question":        "您选择了：%s。\n请输入您的问题，或跳过以获取综合指引。",
		"skip_question":       "跳过问题",
		"reading_loading":     "🔮 正在为您抽牌…",
		"result_title":        "🔮 %s — 占卜结果",
		"result_question":     "❓ 问题：%s",
		"result_cards":        "🎴 抽取的牌：",
		"result_reading":      "📖 解读：",
		"result_blessing":     "✨ 愿塔罗的智慧为你指引方向。",
		"quota_exceeded":      "您的占卜次数已用完，请在 %s 之后再试。",
		"invalid_selection":   "没有这个选项——请从菜单中选择牌阵。",
		"not_in_reading":      "当前没有进行中的占卜。请使用 /reading 开始。",
		"reading_in_progress": "已有占卜在进行中——请先完成或发送 /cancel 取消。",
		"cancelled":           "占卜已取消。塔罗牌会等着你。",
		"nothing_to_cancel":   "没有可取消的占卜。",
		"stale_reading":       "这次占卜在解读完成前已被取消。",
		"degraded_reading":    "今日塔罗之声沉寂——上方每张牌旁仍列有其传统含义。请稍后再试完整解读。",
		"daily_title":         "🌅 您的每日塔罗牌",
		"daily_guidance":      "📖 指引：",
		"learn_center":        "📚 想学习什么？",
		"learn_major":         "🌟 大阿卡纳",
		"learn_minor":         "🎴 小阿卡纳",
		"card_not_found":      "我不认识这张牌。",
		"language_select":     "请选择语言：",
		"language_changed":    "语言已切换为中文。",
		"error_general":       "😔 出错了，请重试。",
		"upright":             "正位",
		"reversed":            "逆位",
	},
}
