package catalogfile

import "github.com/vitabox/v1/internal/domain/catalog"

// Default returns the built-in supplement catalog. Prices are KRW per
// daily tablet unit.
func Default() []catalog.Entry {
	return []catalog.Entry{
		{
			ID:           catalog.VitaminD,
			Name:         "비타민D",
			Category:     "비타민",
			Description:  "뼈 건강과 면역 기능에 필요한 지용성 비타민",
			Benefits:     []string{"뼈 건강", "면역력 유지", "칼슘 흡수 촉진"},
			Precautions:  []string{"과다 섭취 시 고칼슘혈증 주의"},
			FoodSources:  []string{"연어", "달걀 노른자", "버섯"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 300,
		},
		{
			ID:           catalog.VitaminC,
			Name:         "비타민C",
			Category:     "비타민",
			Description:  "항산화 작용을 하는 수용성 비타민",
			Benefits:     []string{"항산화", "면역력 유지", "콜라겐 생성"},
			Precautions:  []string{"과다 섭취 시 위장 장애 가능"},
			FoodSources:  []string{"감귤류", "키위", "브로콜리"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 200,
		},
		{
			ID:           catalog.VitaminB,
			Name:         "비타민B",
			Category:     "비타민",
			Description:  "에너지 대사에 관여하는 비타민B군 복합제",
			Benefits:     []string{"에너지 대사", "피로 개선"},
			Precautions:  []string{"공복 섭취 시 메스꺼움 가능"},
			FoodSources:  []string{"통곡물", "돼지고기", "콩류"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 250,
		},
		{
			ID:           catalog.Omega3,
			Name:         "오메가3",
			Category:     "지방산",
			Description:  "혈행과 심혈관 건강에 도움을 주는 필수 지방산",
			Benefits:     []string{"혈행 개선", "심혈관 건강", "중성지방 개선"},
			Precautions:  []string{"항응고제 복용 시 상담 필요"},
			Interactions: []string{"와파린"},
			FoodSources:  []string{"등푸른 생선", "아마씨"},
			DosageRule: &catalog.DosageRule{
				BaseAmount:   1000,
				WeightFactor: 20,
				GenderFactor: &catalog.GenderFactor{Male: 1.2, Female: 1.0},
				AgeFactor:    &catalog.AgeFactor{Above50: 1.2},
				MaxDosage:    3000,
			},
			PricePerUnit: 500,
		},
		{
			ID:           catalog.CoenzymeQ10,
			Name:         "코엔자임Q10",
			Category:     "항산화제",
			Description:  "세포 에너지 생성과 항산화에 관여하는 성분",
			Benefits:     []string{"항산화", "에너지 대사", "혈압 관리"},
			Precautions:  []string{"혈압약 복용 시 상담 필요"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 600,
		},
		{
			ID:           catalog.Calcium,
			Name:         "칼슘",
			Category:     "미네랄",
			Description:  "뼈와 치아를 구성하는 핵심 미네랄",
			Benefits:     []string{"뼈 건강", "골다공증 예방"},
			Precautions:  []string{"철분제와 동시 섭취 피하기"},
			Interactions: []string{"철분제"},
			FoodSources:  []string{"우유", "멸치", "두부"},
			DosageRule: &catalog.DosageRule{
				BaseAmount:   500,
				WeightFactor: 5,
				GenderFactor: &catalog.GenderFactor{Female: 1.2},
				AgeFactor:    &catalog.AgeFactor{Above50: 1.3},
				MaxDosage:    1500,
			},
			PricePerUnit: 350,
		},
		{
			ID:           catalog.Magnesium,
			Name:         "마그네슘",
			Category:     "미네랄",
			Description:  "근육 이완과 신경 안정에 관여하는 미네랄",
			Benefits:     []string{"근육 이완", "수면 질 개선", "신경 안정"},
			Precautions:  []string{"과다 섭취 시 설사 가능"},
			FoodSources:  []string{"견과류", "시금치", "바나나"},
			PricePerUnit: 400,
		},
		{
			ID:          catalog.Curcumin,
			Name:        "커큐민",
			Category:    "항산화제",
			Description: "강황에서 추출한 항염 성분",
			Benefits:    []string{"항염 작용", "대사 건강"},
			Precautions: []string{"담석 환자 주의"},
			DosageRule: &catalog.DosageRule{
				BaseAmount:   500,
				WeightFactor: 10,
				MaxDosage:    1000,
			},
			PricePerUnit: 450,
		},
		{
			ID:           catalog.Probiotics,
			Name:         "유산균",
			Category:     "프로바이오틱스",
			Description:  "장내 유익균 균형을 돕는 생균제",
			Benefits:     []string{"장 건강", "면역력 유지", "배변 활동"},
			Precautions:  []string{"면역저하자 상담 필요"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 700,
		},
		{
			ID:           catalog.Lutein,
			Name:         "루테인",
			Category:     "카로티노이드",
			Description:  "눈 황반 색소 밀도 유지에 도움을 주는 성분",
			Benefits:     []string{"눈 건강", "황반 색소 유지"},
			Precautions:  []string{"흡연자는 섭취 전 상담 필요"},
			FoodSources:  []string{"시금치", "케일", "달걀 노른자"},
			DosageInfo:   catalog.DosageInfo{RecommendedDailyTablets: 1},
			PricePerUnit: 550,
		},
		{
			ID:          catalog.Arginine,
			Name:        "아르기닌",
			Category:    "아미노산",
			Description: "혈관 확장과 혈행에 관여하는 아미노산",
			Benefits:    []string{"혈행 개선", "운동 능력", "피로 개선"},
			Precautions: []string{"저혈압 환자 주의"},
			DosageRule: &catalog.DosageRule{
				BaseAmount:   1000,
				WeightFactor: 30,
				MaxDosage:    3000,
			},
			PricePerUnit: 300,
		},
	}
}
