package goals

// DefaultCategories is the survey's goal category list in display
// order, with the selectable concern keywords per category.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "피로/활력",
			Keywords: []string{
				"아침에 일어나기 힘들어요",
				"오후만 되면 피곤해요",
				"만성 피로가 있어요",
				"활력이 부족해요",
			},
		},
		{
			Name: "눈 건강",
			Keywords: []string{
				"눈이 자주 피로해요",
				"화면을 오래 봐요",
				"눈이 건조해요",
			},
		},
		{
			Name: "장 건강",
			Keywords: []string{
				"소화가 잘 안돼요",
				"변비가 있어요",
				"배에 가스가 자주 차요",
			},
		},
		{
			Name: "수면/스트레스",
			Keywords: []string{
				"잠들기 어려워요",
				"자주 깨요",
				"스트레스가 많아요",
			},
		},
		{
			Name: "면역력",
			Keywords: []string{
				"감기에 자주 걸려요",
				"환절기가 힘들어요",
				"면역력을 높이고 싶어요",
			},
		},
	}
}
